package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/viant/uuidgen"
	"github.com/viant/uuidgen/server"
)

func main() {
	configURL := flag.String("config", "", "config URL (yaml)")
	kind := flag.String("source", "", "source kind: secure, insecure or external")
	count := flag.Int("n", 1, "number of uuids to print")
	serve := flag.Bool("serve", false, "serve uuids over HTTP")
	traceFile := flag.String("trace", "", "write spans to file")
	flag.Parse()

	ctx := context.Background()
	cfg := uuidgen.DefaultConfig()
	if *configURL != "" {
		var err error
		if cfg, err = uuidgen.LoadConfig(ctx, *configURL); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	if *kind != "" {
		cfg.Source.Kind = *kind
	}
	if *traceFile != "" {
		cfg.Tracing.Enabled = true
		cfg.Tracing.OutputFile = *traceFile
	}

	srv, err := uuidgen.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("failed to create generator: %v", err)
	}

	if *serve {
		engine := gin.Default()
		server.New(srv).Setup(engine)
		log.Printf("serving %s uuids on %s", srv.Kind(), cfg.Server.Port)
		if err := engine.Run(cfg.Server.Port); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
		return
	}

	ids, err := srv.GenerateN(ctx, *count)
	if err != nil {
		log.Fatalf("failed to generate uuids: %v", err)
	}
	for _, id := range ids {
		fmt.Println(id)
	}
}
