package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	canfix "github.com/canfix/nodecore"
	"github.com/canfix/nodecore/transport/socketcan"
	"github.com/canfix/nodecore/transport/virtual"
)

// nodeConfig mirrors the [node] section of the INI file loaded at boot.
// The node id here is only the *initial* value: a Node Set NSM can
// reassign it at runtime, and persisting that change across reboots is
// the host's responsibility (spec §6), not this example's.
type nodeConfig struct {
	NodeID      uint8
	DeviceID    uint8
	Revision    uint8
	Model       uint32
	Description string
}

func loadConfig(path string) (nodeConfig, error) {
	cfg := nodeConfig{NodeID: 0x23, DeviceID: 0x23, Revision: 1, Model: 0x770001}
	if path == "" {
		return cfg, nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("loading config %q: %w", path, err)
	}
	section := file.Section("node")
	cfg.NodeID = uint8(section.Key("node_id").MustUint(int(cfg.NodeID)))
	cfg.DeviceID = uint8(section.Key("device_id").MustUint(int(cfg.DeviceID)))
	cfg.Revision = uint8(section.Key("revision").MustUint(int(cfg.Revision)))
	cfg.Model = uint32(section.Key("model").MustUint(int(cfg.Model)))
	cfg.Description = section.Key("description").MustString(cfg.Description)
	return cfg, nil
}

func main() {
	log.SetLevel(log.InfoLevel)

	canInterface := flag.String("interface", "can0", "socketcan interface, or \"virtual\" for an in-process loopback bus")
	channel := flag.String("channel", "canfix-demo", "channel name, only meaningful for the virtual interface")
	configPath := flag.String("config", "", "path to an INI file with [node] settings")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("could not load configuration")
	}

	bus, err := newBus(*canInterface, *channel)
	if err != nil {
		log.WithError(err).Fatalf("could not open interface %q", *canInterface)
	}

	node := canfix.NewNodeContext(cfg.NodeID, cfg.DeviceID, cfg.Revision, cfg.Model)
	if cfg.Description != "" {
		node.SetDescription(cfg.Description)
	}
	node.WriteFrame = bus.Send
	node.SetNodeSetCallback(func(newNode uint8) {
		log.Infof("node address reassigned to 0x%02X", newNode)
	})
	node.SetBitrateCallback(func(preset uint8) {
		log.Infof("bitrate change requested: preset %d (host must apply and restart CAN controller)", preset)
	})
	node.SetReportCallback(func() {
		log.Info("report requested")
	})

	if err := bus.Subscribe(node); err != nil {
		log.WithError(err).Fatal("could not subscribe to bus")
	}
	if err := bus.Connect(); err != nil {
		log.WithError(err).Fatal("could not connect to bus")
	}
	defer bus.Disconnect()

	log.Infof("canfixnode running as node 0x%02X on %q", node.Node(), *canInterface)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("shutting down")
}

func newBus(canInterface, channel string) (canfix.Bus, error) {
	if canInterface == "virtual" {
		return virtual.New(channel)
	}
	return socketcan.New(canInterface)
}
