package main

import (
	"fmt"
	"log"
	"os"

	"vinoteka/adapters/excel"
	"vinoteka/app"
	"vinoteka/internal/config"
	"vinoteka/internal/errors"
	"vinoteka/ui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error [%s]: %v\n", errors.GetCode(err), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		excelFile    string
		templateFile string
		htmlOutput   string
		jsonOutput   string
		saveJSON     bool
		serve        bool
		listenAddr   string
	)

	cmd := &cobra.Command{
		Use:   "vinoteka",
		Short: "Generate the wine shop page from an Excel catalog",
		Long: `Generate a static wine shop page from a spreadsheet catalog.

The catalog is grouped by category, the globally cheapest wine is flagged
as the promotion, and the result is rendered through template.html.
Optionally the grouped data is exported as JSON and the working directory
is served over HTTP for a local preview.

Every flag can also be set through an environment variable (EXCEL_FILE,
TEMPLATE_FILE, HTML_OUTPUT, JSON_OUTPUT, SAVE_JSON, SERVE, LISTEN_ADDR);
flags win over the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// CLI flags take precedence over environment variables.
			flags := cmd.Flags()
			if flags.Changed("excel-file") {
				cfg.ExcelFile = excelFile
			}
			if flags.Changed("template") {
				cfg.Template = templateFile
			}
			if flags.Changed("html-output") {
				cfg.HTMLOutput = htmlOutput
			}
			if flags.Changed("json-output") {
				cfg.JSONOutput = jsonOutput
			}
			if flags.Changed("save-json") {
				cfg.SaveJSON = saveJSON
			}
			if flags.Changed("serve") {
				cfg.Serve = serve
			}
			if flags.Changed("listen-addr") {
				cfg.ListenAddr = listenAddr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			builder := app.NewBuilder(excel.NewDataReader(cfg.ExcelFile))
			result, err := builder.Build(cfg)
			if err != nil {
				return err
			}

			fmt.Printf("HTML file created: %s\n", result.HTMLPath)
			if result.JSONPath != "" {
				fmt.Printf("JSON file created: %s\n", result.JSONPath)
			}
			fmt.Printf("%d wines in %d categories, winery age %d\n",
				result.Wines, result.Categories, result.Age)

			if cfg.Serve {
				fmt.Printf("Serving http://%s\n", cfg.ListenAddr)
				return ui.NewStaticServer(".").Run(cfg.ListenAddr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&excelFile, "excel-file", "wine3.xlsx", "Path to the Excel or CSV catalog")
	cmd.Flags().StringVar(&templateFile, "template", "template.html", "Path to the page template")
	cmd.Flags().StringVar(&htmlOutput, "html-output", "index.html", "Path for the generated HTML page")
	cmd.Flags().BoolVar(&saveJSON, "save-json", false, "Also export the grouped catalog as JSON")
	cmd.Flags().StringVar(&jsonOutput, "json-output", "wine_data.json", "Path for the JSON export")
	cmd.Flags().BoolVar(&serve, "serve", false, "Serve the working directory over HTTP after generating")
	cmd.Flags().StringVar(&listenAddr, "listen-addr", "127.0.0.1:8000", "Address for the preview server")

	return cmd
}
