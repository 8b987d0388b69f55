// import_products carga productos desde un CSV (planilla de la tienda) en la API de inventario.
//
// Uso: go run ./cmd/import_products [-dry-run] [-latin1] [ruta/produtos.csv]
// Por defecto lee produtos.csv del directorio actual.
// Credenciales: IMPORT_EMAIL e IMPORT_PASSWORD. API: UPSTREAM_BASE_URL (.env o entorno).
//
// Encabezado: name;sku;category;quantity;min_stock;price;cost (también en portugués).
// Los SKU existentes se omiten; las categorías que no existen se crean.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/lojinha-control-api/internal/application/ports"
	"github.com/jhoicas/lojinha-control-api/internal/infrastructure/restapi"
	"github.com/jhoicas/lojinha-control-api/pkg/config"
	"github.com/jhoicas/lojinha-control-api/pkg/logger"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "solo valida el archivo, no llama a la API")
	latin1 := flag.Bool("latin1", false, "el archivo está en ISO-8859-1 (CSV de Excel)")
	flag.Parse()

	csvPath := "produtos.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}

	log := logger.New(logger.Config{Env: "development", Level: "info"})

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", csvPath).Msg("abrir CSV")
	}
	defer f.Close()

	rows, err := parseProducts(f, *latin1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CSV con errores:\n%v\n", err)
		os.Exit(1)
	}
	if *dryRun {
		fmt.Printf("%s: %d productos válidos\n", csvPath, len(rows))
		return
	}

	up, err := config.LoadUpstream()
	if err != nil {
		log.Fatal().Err(err).Msg("configuración")
	}
	email, password := os.Getenv("IMPORT_EMAIL"), os.Getenv("IMPORT_PASSWORD")
	if email == "" || password == "" {
		log.Fatal().Msg("IMPORT_EMAIL e IMPORT_PASSWORD son obligatorios")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := restapi.NewClient(up.BaseURL, up.Timeout, up.MaxPages)
	token, user, err := restapi.NewAuthGateway(client).Login(ctx, email, password)
	if err != nil {
		log.Fatal().Err(err).Msg("login en la API de inventario")
	}
	log.Info().Str("user", user.Email).Int("rows", len(rows)).Msg("importando productos")

	im := importer{
		products:   restapi.NewProductRepository(client),
		categories: restapi.NewCategoryRepository(client),
		log:        log,
	}
	res, err := im.run(ports.WithAccessToken(ctx, token), rows)
	if err != nil {
		log.Error().Err(err).Int("created", res.Created).Msg("importación interrumpida")
		os.Exit(1)
	}
	fmt.Printf("Importados %d productos (%d omitidos, %d categorías nuevas)\n", res.Created, res.Skipped, res.NewCategories)
}
