package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/FreddyMSchubert/github-activity-timeline/internal/config"
	"github.com/FreddyMSchubert/github-activity-timeline/internal/github"
	"github.com/FreddyMSchubert/github-activity-timeline/internal/service"
	"github.com/FreddyMSchubert/github-activity-timeline/internal/ui"
	"github.com/spf13/cobra"
)

type flags struct {
	username   string
	maxItems   string
	readme     string
	timezone   string
	source     string
	configFile string
	templates  string
}

// loadConfig layers environment inputs, the optional config file, and any
// flags the user set, in that order.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	if f.configFile != "" {
		if err := cfg.LoadFile(f.configFile); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("username") {
		cfg.Username = f.username
	}
	if cmd.Flags().Changed("max-items") {
		cfg.MaxItems = config.ParseMaxItems(f.maxItems)
	}
	if cmd.Flags().Changed("readme") {
		cfg.ReadmePath = f.readme
	}
	if cmd.Flags().Changed("timezone") {
		cfg.Timezone = f.timezone
	}
	if cmd.Flags().Changed("source") {
		cfg.Source = f.source
	}
	if cmd.Flags().Changed("templates") {
		templates, err := config.ParseTemplates(f.templates)
		if err != nil {
			return nil, err
		}
		cfg.Templates = templates
	}

	return cfg, nil
}

func runUpdate(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := github.NewClient(cfg.Token)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	activityService := service.NewActivityService(client, cfg, time.Now, os.Stderr)
	changed, err := activityService.Run()
	if err != nil {
		return err
	}

	if changed {
		fmt.Println("README updated")
	} else {
		fmt.Println("No changes")
	}
	return nil
}

// runTemplates fetches current activity, lets the user pick an observed
// event type, and prints a starter template-map entry for it.
func runTemplates(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	if cfg.Token == "" || cfg.Username == "" {
		return fmt.Errorf("missing github token or username")
	}

	client, err := github.NewClient(cfg.Token)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	raw, err := client.FetchUserEvents(cfg.Username)
	if err != nil {
		return err
	}

	prompter := &ui.DefaultPrompter{}
	selected, err := prompter.SelectEventType(service.TallyEventTypes(raw))
	if err != nil {
		return err
	}

	snippet, err := json.MarshalIndent(map[string]string{
		selected: service.StarterTemplate(selected),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode template snippet: %w", err)
	}

	fmt.Println("Add this entry to your event_templates map:")
	fmt.Println(string(snippet))
	return nil
}

func newRootCommand() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "github-activity-timeline",
		Short: "Render recent GitHub activity into a README section",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, f)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&f.username, "username", "", "GitHub username whose activity is rendered")
	cmd.PersistentFlags().StringVar(&f.maxItems, "max-items", "", "maximum number of activity lines")
	cmd.PersistentFlags().StringVar(&f.readme, "readme", "", "path of the document to patch")
	cmd.PersistentFlags().StringVar(&f.timezone, "timezone", "", "IANA timezone for relative dates")
	cmd.PersistentFlags().StringVar(&f.source, "source", "", "event source: rest or graphql")
	cmd.PersistentFlags().StringVar(&f.configFile, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&f.templates, "templates", "", "event template map as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "templates",
		Short: "Scaffold a template entry from your recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd, f)
		},
		SilenceUsage: true,
	})

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
