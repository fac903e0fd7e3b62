package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/markshop/markshop/config"
	"github.com/markshop/markshop/internal/adminweb"
	"github.com/markshop/markshop/internal/app"
	"github.com/markshop/markshop/internal/shopapi"
	"github.com/markshop/markshop/internal/webserver"
)

var (
	h        bool
	showVer  bool
	initdb   bool
	conffile string
	port     int
)

const appVersion = "1.0.0"

func init() {
	flag.BoolVar(&h, "h", false, "help usage")
	flag.BoolVar(&showVer, "v", false, "print version")
	flag.BoolVar(&initdb, "initdb", false, "drop and recreate all tables before starting")
	flag.StringVar(&conffile, "c", "markshop.yml", "config file")
	flag.IntVar(&port, "p", 0, "web port override")
}

func main() {
	flag.Parse()
	if h {
		flag.Usage()
		os.Exit(0)
	}
	if showVer {
		fmt.Println("markshop", appVersion)
		os.Exit(0)
	}

	cfg := config.LoadConfig(conffile)
	if port > 0 {
		cfg.Web.Port = port
	}
	cfg.InitDirs()

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if initdb {
		zap.L().Warn("reinitializing database, all data dropped")
		application.InitDb()
		application.CheckDefaults()
	}

	webserver.Init(cfg, application.DB())
	shopapi.InitRouter()
	adminweb.InitRouter()

	if err := webserver.Listen(); err != nil {
		zap.S().Fatalf("web server stopped: %v", err)
	}
}
