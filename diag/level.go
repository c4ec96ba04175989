package diag

// Level classifies a diagnostic message. Levels form a fixed ordered set from
// LevelDebug up to LevelAny, the catch-all highest level.
type Level uint8

// The recognised severity levels, in increasing order.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelAny
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
	LevelAny:   "ANY",
}

// String returns the uppercase level name. The conversion is total: any level
// outside the recognised range renders as "ANY".
func (l Level) String() string {
	if int(l) >= len(levelNames) {
		return levelNames[LevelAny]
	}
	return levelNames[l]
}

// LevelFromInt maps an integer to its Level. Integers outside 0-5, including
// negatives, map to LevelAny.
func LevelFromInt(n int) Level {
	if n < 0 || n > int(LevelAny) {
		return LevelAny
	}
	return Level(n)
}
