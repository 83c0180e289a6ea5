//go:build js
// +build js

package main

import (
	"github.com/simukka/crtscope/web"
)

func main() {
	if err := web.Run(); err != nil {
		panic(err)
	}

	select {}
}
