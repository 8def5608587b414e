//go:build !unix

package cursor

// QueryPosition is not supported on this platform; regions created here
// degrade to disabled.
func QueryPosition() (int, int, error) {
	return 0, 0, ErrNoPosition
}
