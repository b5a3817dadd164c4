package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/xiao334455/dyresolve/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Unable to load .env file:", err)
	}

	logLevel := slog.LevelDebug
	if levelStr, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if err := logLevel.UnmarshalText([]byte(levelStr)); err != nil {
			fmt.Println("(warn) Invalid value for LOG_LEVEL environment variable")
		}
	}

	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevel,
	})

	slog.SetDefault(slog.New(logHandler))

	addr, ok := os.LookupEnv("DYRESOLVE_ADDR")
	if !ok {
		addr = "localhost:8080"
		slog.Info("DYRESOLVE_ADDR not provided, using default '" + addr + "'")
	}

	cert, hasCert := os.LookupEnv("HTTPS_CERT_FILE")
	key, hasKey := os.LookupEnv("HTTPS_KEY_FILE")

	router := routes.CreateMainRouter()

	var err error
	if hasKey && hasCert {
		slog.Info("Starting HTTPS server", slog.String("addr", addr), slog.String("cert", cert), slog.String("key", key))
		err = http.ListenAndServeTLS(addr, cert, key, router)
	} else {
		slog.Info("Starting HTTP server", slog.String("addr", addr))
		err = http.ListenAndServe(addr, router)
	}

	if err != nil {
		panic(err)
	}
}
