package assets

import "golang.org/x/image/font/gofont/goregular"

// bundled returns the embedded TTF used by Load.
func bundled() []byte {
	return goregular.TTF
}
