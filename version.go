package patrol

// Version is the current release of patrol.
var Version = "0.1.0"
