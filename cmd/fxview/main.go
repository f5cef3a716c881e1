package main

import (
	"flag"
	"os"

	"GopherFX/internal/config"
	"GopherFX/internal/engine"
	"GopherFX/internal/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to effects YAML (empty = use defaults)")
	backdrop := flag.String("backdrop", "", "Image drawn behind the effects (overrides scene.backdrop)")
	dumpConfig := flag.String("dump-config", "", "Write the effective config to this path and exit")
	flag.Parse()

	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.Error("Failed to load config", zap.String("path", *configPath), zap.Error(err))
		os.Exit(1)
	}
	if *backdrop != "" {
		cfg.Scene.Backdrop = *backdrop
	}

	if *dumpConfig != "" {
		if err := cfg.WriteYAML(*dumpConfig); err != nil {
			logger.Log.Error("Failed to write config", zap.Error(err))
			os.Exit(1)
		}
		logger.Log.Info("Config written", zap.String("path", *dumpConfig))
		return
	}

	chain := cfg.BuildChain()
	logger.Log.Info("GopherFX starting",
		zap.Strings("chain", cfg.Chain),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	host := engine.NewHost(cfg, chain)
	if err := host.Run(100, 100); err != nil {
		logger.Log.Error("Viewer stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
