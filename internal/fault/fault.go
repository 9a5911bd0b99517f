package fault

import "fmt"

// Kind classifies a failure for exit-code mapping and error messages.
type Kind string

const (
	Config      Kind = "ConfigError"
	IO          Kind = "IOError"
	ImageDecode Kind = "ImageDecodeError"
	Write       Kind = "WriteError"
)

// Error tags an underlying error with a kind and the path that failed.
type Error struct {
	Kind Kind
	Op   string // what was being attempted, e.g. "reading code file"
	Path string // failing path, empty for pathless config errors
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Kind, e.Op, e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Path)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a tagged error with no underlying cause.
func New(kind Kind, op, path string) error {
	return &Error{Kind: kind, Op: op, Path: path}
}

// Wrap tags err with a kind and the failing path. Returns nil if err is nil.
func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf returns the kind of the outermost tagged error in err's chain,
// or the empty string if err carries no tag.
func KindOf(err error) Kind {
	for err != nil {
		if fe, ok := err.(*Error); ok {
			return fe.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}

// Is reports whether err's chain contains a tagged error of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
