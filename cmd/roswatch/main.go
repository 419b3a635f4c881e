// Command roswatch is a terminal UI for introspecting a ROS 2 graph:
// node, topic, and service lists on the left, detail for the current
// selection on the right, with a live topic echo mode.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"roswatch/internal/config"
	"roswatch/internal/logging"
	"roswatch/internal/monitor"
	"roswatch/internal/telemetry"
	"roswatch/internal/ui"
)

const detailWindow = "detail"

var rootCmd = &cobra.Command{
	Use:          "roswatch",
	Short:        "Terminal dashboard for ROS 2 nodes, topics, and services",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().String("config", "", "path to config file")
	rootCmd.Flags().Bool("debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd, cfgPath)
	if err != nil {
		return err
	}

	logCloser, err := logging.Setup(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	ctx := context.Background()
	tel, err := telemetry.Init(ctx)
	if err != nil {
		logging.Warnf("telemetry disabled: %v", err)
	}
	defer tel.Shutdown(ctx)

	mon := monitor.NewRos2(cfg.SetupScript, monitor.WithDescribeTTL(cfg.DescribeTTL))
	echo := monitor.NewEchoStreamer(cfg.SetupScript, nil)

	nodes := monitor.NewRefresher(mon.Nodes(), cfg.RefreshInterval)
	topics := monitor.NewRefresher(mon.Topics(), cfg.RefreshInterval)
	services := monitor.NewRefresher(mon.Services(), cfg.RefreshInterval)
	for _, r := range []*monitor.Refresher{nodes, topics, services} {
		r.Start()
		defer r.Stop()
	}

	detail := ui.NewTextWindow(detailWindow, ui.Right)
	nodesWin := ui.NewListWindow("nodes", ui.Left, nodes.Items(),
		ui.Bind(monitor.NewDescribeCallback("node-info", detailWindow, mon.Nodes())))
	topicsWin := ui.NewListWindow("topics", ui.Left, topics.Items(),
		ui.Bind(monitor.NewTopicCallback("topic-detail", detailWindow, mon.Topics(), echo)))
	topicsWin.SetModeLabel(monitor.ModeInfo)
	servicesWin := ui.NewListWindow("services", ui.Left, services.Items(),
		ui.Bind(monitor.NewDescribeCallback("service-type", detailWindow, mon.Services())))

	session, err := ui.NewSession(nodesWin, topicsWin, servicesWin, detail)
	if err != nil {
		return err
	}
	// Streams are stopped by Session.Shutdown on quit, but make sure
	// nothing survives an abnormal exit either.
	defer session.Shutdown()

	logging.Infof("roswatch starting (refresh %s)", cfg.RefreshInterval)
	p := tea.NewProgram(session, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}
