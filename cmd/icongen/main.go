package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/aquaware/icongen"
	"github.com/aquaware/icongen/utils"
	"golang.org/x/term"
)

const helpBanner = `
┬┌─┐┌─┐┌┐┌┌─┐┌─┐┌┐┌
││  │ │││││ ┬├┤ │││
┴└─┘└─┘┘└┘└─┘└─┘┘└┘

Procedural app icon generator.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	theme        = flag.String("theme", "goal", "Icon theme ("+strings.Join(icongen.ThemeNames(), "|")+")")
	size         = flag.Int("size", 0, "Render a single icon at this pixel size")
	output       = flag.String("out", pipeName, "Destination of the single render")
	set          = flag.String("set", "", "Populate the appiconset directory at this path")
	prefix       = flag.String("prefix", "AppIcon", "Filename prefix for newly assigned manifest slots")
	master       = flag.String("master", "", "Resample this master icon instead of rendering procedurally")
	skipExisting = flag.Bool("skip-existing", false, "Skip slots whose output file already exists")
	workers      = flag.Int("conc", runtime.NumCPU(), "Number of slots to render concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *size <= 0 && *set == "" {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide a render size or an appiconset directory!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	var desc *icongen.IconDescription
	if *master == "" {
		var err error
		desc, err = icongen.Theme(*theme)
		if err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
	}

	now := time.Now()

	switch {
	case *set != "":
		generateSet(desc)
	default:
		renderOne(desc)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// renderOne rasterizes a single icon and writes it to a file or stdout.
func renderOne(desc *icongen.IconDescription) {
	if desc == nil {
		log.Fatal(utils.DecorateText("single renders need a theme, not a master icon", utils.ErrorMessage))
	}

	png, err := icongen.Render(desc, *size)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to render the icon: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	if *output == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			log.Fatal(utils.DecorateText("`-` should be used with a pipe for stdout", utils.ErrorMessage))
		}
		if _, err := os.Stdout.Write(png); err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		return
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	if err := os.WriteFile(*output, png, 0644); err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	fmt.Fprintf(os.Stderr, "The rendered icon has been saved as: %s %s\n",
		utils.DecorateText(filepath.Base(*output), utils.SuccessMessage),
		utils.DefaultColor,
	)
}

// generateSet populates every slot of the appiconset manifest.
func generateSet(desc *icongen.IconDescription) {
	gen := &icongen.Generator{
		Desc:         desc,
		MasterPath:   *master,
		Prefix:       *prefix,
		SkipExisting: *skipExisting,
		Workers:      *workers,
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ICONGEN", utils.StatusMessage),
		utils.DecorateText("is rendering the icon set...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*200, true)
	spinner.Start()

	err := gen.GenerateSet(*set)

	spinner.StopMsg = fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ICONGEN", utils.StatusMessage),
		utils.DecorateText("is rendering the icon set... ✔", utils.DefaultMessage))
	spinner.Stop()

	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the icon set: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}
	fmt.Fprintf(os.Stderr, "\nThe icon set has been written into: %s %s\n",
		utils.DecorateText(*set, utils.SuccessMessage),
		utils.DefaultColor,
	)
}
