package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aquaware/icongen/screenshot"
	"github.com/aquaware/icongen/utils"
)

const helpBanner = `
┌─┐┌─┐┬─┐┌─┐┌─┐┌┐┌┌─┐
└─┐│  ├┬┘├┤ ├┤ │││└─┐
└─┘└─┘┴└─└─┘└─┘┘└┘└─┘

App Store screenshot preparation (scale + pad).
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	source  = flag.String("source", "attachments", "Input folder with captures")
	outBase = flag.String("out", "attachments", "Base folder for the export directories")
	bgColor = flag.String("bg", "#FFFFFF", "Background hex color for the padding")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	bg, err := screenshot.ParseHexColor(*bgColor)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	src := *source
	// A remote capture is downloaded into its own temporary folder first.
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source capture: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		tmpDir, err := os.MkdirTemp("", "screens")
		if err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		defer os.RemoveAll(tmpDir)

		name := filepath.Base(*source)
		if filepath.Ext(name) == "" {
			name += ".png"
		}
		if err := os.Rename(f.Name(), filepath.Join(tmpDir, name)); err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		src = tmpDir
	}

	proc := &screenshot.Processor{
		Source:     src,
		OutBase:    *outBase,
		Background: bg,
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SCREENS", utils.StatusMessage),
		utils.DecorateText("is preparing the screenshots...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*200, true)
	spinner.Start()

	now := time.Now()
	processed, err := proc.Process()

	spinner.StopMsg = fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SCREENS", utils.StatusMessage),
		utils.DecorateText("is preparing the screenshots... ✔", utils.DefaultMessage))
	spinner.Stop()

	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError preparing the screenshots: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}

	fmt.Fprintf(os.Stderr, "\nProcessed %s capture(s) in %s\n",
		utils.DecorateText(fmt.Sprintf("%d", processed), utils.SuccessMessage),
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
	)
}
