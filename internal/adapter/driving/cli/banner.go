package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/finreport/aws-spend-report-go/pkg/version"
)

// displayWelcomeBanner prints the welcome banner with version information.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$  /$$      /$$  /$$$$$$         /$$$$$$                                      /$$
        /$$__  $$| $$  /$ | $$ /$$__  $$       /$$__  $$                                    | $$
       | $$  \ $$| $$ /$$$| $$| $$  \__/      | $$  \__/  /$$$$$$   /$$$$$$  /$$$$$$$   /$$$$$$$
       | $$$$$$$$| $$/$$ $$ $$|  $$$$$$       |  $$$$$$  /$$__  $$ /$$__  $$| $$__  $$ /$$__  $$
       | $$__  $$| $$$$_  $$$$ \____  $$       \____  $$| $$  \ $$| $$$$$$$$| $$  \ $$| $$  | $$
       | $$  | $$| $$$/ \  $$$ /$$  \ $$       /$$  \ $$| $$  | $$| $$_____/| $$  | $$| $$  | $$
       | $$  | $$| $$/   \  $$|  $$$$$$/      |  $$$$$$/| $$$$$$$/|  $$$$$$$| $$  | $$|  $$$$$$$
       |__/  |__/|__/     \__/ \______/        \______/ | $$____/  \_______/|__/  |__/ \_______/
                                                        | $$
                                                        | $$
                                                        |__/
       `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AWS Spend Report CLI (v%s)", formattedVersion)))
}
