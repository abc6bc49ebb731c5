package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"taskledger/internal/config"
	"taskledger/internal/serverapp"
)

func main() {
	cfg, err := config.Load("taskledger.yml")
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		log.Fatalf("apply env config: %v", err)
	}

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config:        cfg,
		StaticDir:     "static",
		UseDiskStatic: serverapp.UseDiskStaticByEnv(),
		Logger:        log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("listening on http://localhost%s (log: %s)", cfg.Server.Addr, cfg.ResolvedLogPath())
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}
