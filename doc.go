/*
Package icongen is a procedural app icon generator: it rasterizes flat-color
icon themes described as shape layers over a vertical gradient and encodes
the result as a lossless PNG with its own chunked container encoder,
without any external imaging library in the rendering path.

The package provides a command line interface for rendering a single icon
or populating a full appiconset from its size manifest. To check the
supported commands type:

	$ icongen --help

In case you wish to integrate the API in a self constructed environment
here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/aquaware/icongen"
	)

	func main() {
		desc, _ := icongen.Theme("goal")
		png, err := icongen.Render(desc, 1024)
		if err != nil {
			fmt.Printf("Error rendering the icon: %s", err.Error())
			return
		}
		os.WriteFile("app_icon_1024.png", png, 0644)
	}
*/
package icongen
