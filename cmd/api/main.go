package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/biztime/internal/company"
	companyStore "github.com/MrJamesThe3rd/biztime/internal/company/store"
	"github.com/MrJamesThe3rd/biztime/internal/config"
	"github.com/MrJamesThe3rd/biztime/internal/database"
	biztimeHttp "github.com/MrJamesThe3rd/biztime/internal/http"
	companyHandler "github.com/MrJamesThe3rd/biztime/internal/http/company"
	industryHandler "github.com/MrJamesThe3rd/biztime/internal/http/industry"
	invoiceHandler "github.com/MrJamesThe3rd/biztime/internal/http/invoice"
	"github.com/MrJamesThe3rd/biztime/internal/industry"
	industryStore "github.com/MrJamesThe3rd/biztime/internal/industry/store"
	"github.com/MrJamesThe3rd/biztime/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/biztime/internal/invoice/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		companyService  = company.NewService(companyStore.New(db))
		invoiceService  = invoice.NewService(invoiceStore.New(db))
		industryService = industry.NewService(industryStore.New(db))
	)

	var (
		companyH  = companyHandler.NewHandler(companyService)
		invoiceH  = invoiceHandler.NewHandler(invoiceService)
		industryH = industryHandler.NewHandler(industryService)
	)

	router := biztimeHttp.New(companyH, invoiceH, industryH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
