package cfg

// IndexedLookup selects the quadtree index for nearest-color queries.
// When false, every query scans the whole palette. Both select the same
// entry; the scan is kept as the reference.
var IndexedLookup = true

// LogLevel is the logrus level used by command line tools.
var LogLevel = "info"

// LogLevelEnv overrides LogLevel when set.
const LogLevelEnv = "BRICKCOLOR_LOG_LEVEL"
