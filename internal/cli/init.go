// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/specforge/specforge/internal/config"
	"github.com/specforge/specforge/internal/openapi"
	"github.com/specforge/specforge/internal/scanner"
	"github.com/specforge/specforge/internal/util"
)

var (
	initForce       bool
	initInteractive bool
	initTitle       string
	initVersion     string
	initName        string
	initTokenURL    string
	initSample      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new specforge configuration file",
	Long: `Initialize a new specforge configuration file in the current directory.

This command creates a specforge.yaml file with sensible defaults
that you can customize for your project.

Features:
  - Infers the API title and scope name from go.mod
  - Discovers an existing description document to use as input
  - Can write an annotated sample document to start from

Example:
  specforge init                          # Create config with detected defaults
  specforge init --force                  # Overwrite existing config
  specforge init --interactive            # Interactive mode with prompts
  specforge init --title "Widget API"     # Set a custom API title
  specforge init --sample                 # Also write a sample input document`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "interactive mode with prompts")
	initCmd.Flags().StringVar(&initTitle, "title", "", "API title published in the document info")
	initCmd.Flags().StringVar(&initVersion, "version", "", "API version published in the document info")
	initCmd.Flags().StringVar(&initName, "name", "", "API name used as the OAuth2 scope identifier")
	initCmd.Flags().StringVar(&initTokenURL, "token-url", "", "OAuth2 token endpoint for the security scheme")
	initCmd.Flags().BoolVar(&initSample, "sample", false, "write an annotated sample document as the input")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := "specforge.yaml"
	if cfgFile != "" {
		configFile = cfgFile
	}

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", configFile)
	}

	// Determine project root
	projectRoot, err := filepath.Abs(".")
	if err != nil {
		return fmt.Errorf("failed to determine project root: %w", err)
	}

	// Create config with sensible defaults
	cfg := config.Default()

	// Detect project info from go.mod, falling back to the directory name
	info := detectProjectInfo(projectRoot)
	if info.Title == "" {
		name := filepath.Base(projectRoot)
		info.Title = util.TitleCase(name) + " API"
		info.Name = util.Slugify(name)
	}

	// Set API identity from detection or flags
	cfg.API.Title = info.Title
	if initTitle != "" {
		cfg.API.Title = initTitle
	}
	if initVersion != "" {
		cfg.API.Version = initVersion
	}
	cfg.API.Name = info.Name
	if initName != "" {
		cfg.API.Name = initName
	}
	if initTokenURL != "" {
		cfg.Security.TokenURL = initTokenURL
	}

	// Discover an existing description document to use as input
	if input := detectInput(projectRoot); input != "" {
		cfg.Input = input
		printVerbose("Detected input document: %s", input)
	}

	// Interactive mode
	if initInteractive && isTerminal() {
		cfg, err = interactiveInit(cfg)
		if err != nil {
			return fmt.Errorf("interactive init failed: %w", err)
		}
	}

	// Write a starter document when asked and none exists
	if initSample {
		if _, err := os.Stat(cfg.Input); os.IsNotExist(err) {
			if err := openapi.NewWriter().WriteFile(openapi.Sample(), cfg.Input, ""); err != nil {
				return fmt.Errorf("failed to write sample document: %w", err)
			}
			printInfo("Created %s (sample document)", cfg.Input)
		} else {
			printVerbose("Input document already exists, skipping sample")
		}
	}

	// Build YAML with comments
	content := buildConfigYAML(cfg)

	// Write config file
	if err := os.WriteFile(configFile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	printInfo("Created %s", configFile)
	printVerbose("Title: %s", cfg.API.Title)
	printVerbose("Name: %s", cfg.API.Name)
	printVerbose("Input: %s", cfg.Input)
	if cfg.Security.TokenURL == "" {
		printInfo("Set security.tokenUrl before running 'specforge apply'")
	}

	return nil
}

// projectInfo holds information detected from the project.
type projectInfo struct {
	Module string
	Title  string
	Name   string
}

// detectProjectInfo detects project information from go.mod.
func detectProjectInfo(projectRoot string) projectInfo {
	info := projectInfo{}

	goModPath := filepath.Join(projectRoot, "go.mod")
	file, err := os.Open(goModPath)
	if err != nil {
		return info
	}
	defer file.Close()

	s := bufio.NewScanner(file)
	for s.Scan() {
		line := s.Text()
		if strings.HasPrefix(line, "module ") {
			info.Module = strings.TrimSpace(strings.TrimPrefix(line, "module "))

			// Derive the identity from the last module path segment,
			// e.g. "github.com/user/my-api" becomes "My Api API" / "my-api"
			parts := strings.Split(info.Module, "/")
			if len(parts) > 0 {
				name := parts[len(parts)-1]
				info.Title = util.TitleCase(name) + " API"
				info.Name = util.Slugify(name)
			}
			break
		}
	}

	return info
}

// detectInput searches the project for description documents and returns the
// shallowest match relative to the root, or "" when none exist.
func detectInput(projectRoot string) string {
	docs, err := scanner.New(scanner.Config{BasePath: projectRoot}).Scan()
	if err != nil || len(docs) == 0 {
		return ""
	}

	best := ""
	bestDepth := 0
	for _, doc := range docs {
		rel, err := filepath.Rel(projectRoot, doc.Path)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		depth := strings.Count(rel, "/")
		if best == "" || depth < bestDepth || (depth == bestDepth && rel < best) {
			best = rel
			bestDepth = depth
		}
	}
	return best
}

// isTerminal checks if stdin is a terminal.
func isTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// interactiveInit prompts the user for configuration options.
func interactiveInit(cfg *config.Config) (*config.Config, error) {
	reader := bufio.NewReader(os.Stdin)

	// API Title
	fmt.Printf("API Title [%s]: ", cfg.API.Title)
	title, _ := reader.ReadString('\n')
	title = strings.TrimSpace(title)
	if title != "" {
		cfg.API.Title = title
	}

	// API Version
	fmt.Printf("API Version [%s]: ", cfg.API.Version)
	version, _ := reader.ReadString('\n')
	version = strings.TrimSpace(version)
	if version != "" {
		cfg.API.Version = version
	}

	// Token URL
	fmt.Printf("OAuth2 token URL [%s]: ", cfg.Security.TokenURL)
	tokenURL, _ := reader.ReadString('\n')
	tokenURL = strings.TrimSpace(tokenURL)
	if tokenURL != "" {
		cfg.Security.TokenURL = tokenURL
	}

	// Input file
	fmt.Printf("Input document [%s]: ", cfg.Input)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input != "" {
		cfg.Input = input
	}

	// Output file
	fmt.Printf("Output file [%s]: ", cfg.Output)
	out, _ := reader.ReadString('\n')
	out = strings.TrimSpace(out)
	if out != "" {
		cfg.Output = out
	}

	// Output format
	fmt.Printf("Output format (yaml/json) [%s]: ", cfg.Format)
	fm, _ := reader.ReadString('\n')
	fm = strings.TrimSpace(fm)
	if fm != "" {
		cfg.Format = fm
	}

	return cfg, nil
}

// buildConfigYAML builds a YAML config with helpful comments.
func buildConfigYAML(cfg *config.Config) string {
	// First, marshal to get the base YAML
	data, _ := yaml.Marshal(cfg)

	// Add header comment
	header := `# specforge configuration file
# https://github.com/specforge/specforge

`
	return header + string(data)
}
