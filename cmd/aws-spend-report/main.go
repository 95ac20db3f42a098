package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/finreport/aws-spend-report-go/internal/adapter/driven/aws"
	configrepo "github.com/finreport/aws-spend-report-go/internal/adapter/driven/config"
	"github.com/finreport/aws-spend-report-go/internal/adapter/driven/export"
	"github.com/finreport/aws-spend-report-go/internal/adapter/driven/render"
	"github.com/finreport/aws-spend-report-go/internal/adapter/driving/cli"
	"github.com/finreport/aws-spend-report-go/internal/application/usecase"
	"github.com/finreport/aws-spend-report-go/internal/shared/types"
	"github.com/finreport/aws-spend-report-go/pkg/console"
	"github.com/finreport/aws-spend-report-go/pkg/version"
)

func main() {
	app := cli.NewCLIApp(version.Version)

	consoleImpl := console.NewConsole()
	configRepo := configrepo.NewConfigRepository(consoleImpl)
	exportRepo := export.NewExportRepository()
	chartRenderer := render.NewGoogleChartRenderer()
	tableRenderer := render.NewHTMLTableRenderer()

	awsFactory := func(ctx context.Context, cfg *types.Config, c types.ConsoleInterface) (usecase.AWSServices, error) {
		clients, err := aws.NewClientSet(ctx, cfg.Profile, cfg.Region)
		if err != nil {
			return usecase.AWSServices{}, err
		}
		account, err := clients.VerifyIdentity(ctx)
		if err != nil {
			return usecase.AWSServices{}, err
		}
		c.LogInfo("Using AWS account %s", account)

		return usecase.AWSServices{
			Query:   aws.NewAthenaRepository(clients, cfg.Database, cfg.OutputLocation, c),
			Email:   aws.NewSESRepository(clients, cfg.FromAddress, cfg.ToEmailDomain, cfg.DryRun, c),
			Archive: aws.NewS3ArchiveRepository(clients, c),
		}, nil
	}

	reportUseCase := usecase.NewReportUseCase(
		configRepo,
		exportRepo,
		chartRenderer,
		tableRenderer,
		consoleImpl,
		awsFactory,
		time.Now,
	)

	app.SetReportUseCase(reportUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
