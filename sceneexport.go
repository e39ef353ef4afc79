package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/merkaril/sceneexport/config"
	"github.com/merkaril/sceneexport/host"
	"github.com/merkaril/sceneexport/level"
	"github.com/merkaril/sceneexport/logger"
	"github.com/merkaril/sceneexport/utils"
	"github.com/merkaril/sceneexport/web"
)

func main() {
	var addr, scenePath, outDir, mapName, cfgPath string
	var dump, listEncodings bool
	flag.StringVar(&addr, "i", "", "Address of server, leave empty for one-shot export")
	flag.StringVar(&scenePath, "scene", "", "Path to scene snapshot json")
	flag.StringVar(&outDir, "out", ".", "Output directory")
	flag.StringVar(&mapName, "name", "", "Map name override, defaults to scene name")
	flag.StringVar(&cfgPath, "cfg", "", "Path to exporter config yaml")
	flag.BoolVar(&dump, "dump", false, "Dump the loaded scene and exit")
	flag.BoolVar(&listEncodings, "listencodings", false, "Print supported name encodings and exit")
	flag.Parse()

	if listEncodings {
		for _, name := range config.ListEncodings() {
			log.Println(name)
		}
		return
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		log.Fatal(err)
	}
	defer logger.Log.Sync()

	if scenePath == "" {
		flag.PrintDefaults()
		return
	}

	scene, err := host.LoadSnapshot(scenePath)
	if err != nil {
		logger.Sugar.Fatal(err)
	}

	if dump {
		utils.Dump(scene)
		return
	}

	if addr != "" {
		if err := web.StartServer(addr, scene, cfg, nil, outDir); err != nil {
			logger.Sugar.Fatal(err)
		}
		return
	}

	if mapName == "" {
		mapName = scene.Name()
	}

	exporter, err := level.NewExporter(scene, cfg, nil)
	if err != nil {
		logger.Sugar.Fatal(err)
	}
	destPath := filepath.Join(outDir, mapName+cfg.Formats.Map)
	if err := exporter.ExportMap(destPath); err != nil {
		logger.Sugar.Fatal(err)
	}
	logger.Sugar.Infof("exported %q", destPath)
}
