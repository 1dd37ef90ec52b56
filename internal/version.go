package internal

// Version is the current termimport release version.
const Version = "1.0.0"
