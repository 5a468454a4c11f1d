package recital

// Version is the release of the recital program.
const Version = "0.1.0"
