package mytar

const (
	toolName = "mytar"

	// ustar magic; "ustar\x00" (POSIX) and "ustar " (GNU) both match.
	magic = "ustar"

	blockSize = 512

	nameOffset  = 0
	nameLength  = 100
	sizeOffset  = 124
	sizeLength  = 12
	typeOffset  = 156
	magicOffset = 257
	magicLength = len(magic)

	typeRegular byte = '0'
)

// Exit statuses
const (
	ExitOK      = 0
	ExitFailure = 2
)

// Options
const (
	OptNone BitFlags = 1 << iota
	OptVerbose
	OptProgress
	OptDebug

	optTop //Do not use, move or delete
)

var (
	optNames = []string{"None", "Verbose", "Progress", "Debug", "Unknown"}
)
