package commands

import (
	"fmt"
	"io"
)

// PrintUsage writes the CLI help message
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, `Supply Chain Delay Analytics

USAGE:
    supplychain <command> [options]

COMMANDS:
    generate    Synthesize a dataset and write 01_schema.sql and 02_data.sql
    analyze     Load a dataset and print the four delay reports
    seed        Copy a dataset into postgres, kv or csv storage
    serve       Serve the reports over HTTP
    token       Print a bearer token for the API
    help        Show this help message

COMMON OPTIONS:
    --config <file>          Config file (default: ./configs/supplychain.yaml or ./supplychain.yaml)
    --verbose                Enable verbose output
    --log-level <level>      debug, info, warn, error
    --log-format <fmt>       console, json

SOURCE OPTIONS (analyze, seed, serve):
    --source <kind>          generate, csv, postgres, kv (default: generate)
    --csv-dir <dir>          Directory holding suppliers/products/warehouses/shipments.csv
    --dsn <dsn>              Postgres connection string
    --kv-path <dir>          Badger directory

GENERATOR OPTIONS (generate, analyze, seed, serve):
    --seed <n>               Random seed, 0 means time-based
    --preset <name>          full (150 shipments) or demo (50 shipments)
    --shipments <n>          Override the number of shipments
    --start-date <date>      First possible order date, YYYY-MM-DD
    --delay-probability <p>  Probability that a shipment is delayed
    --in-transit-probability <p>
                             Probability that a shipment has no delivery yet

GENERATE OPTIONS:
    --output <dir>           Output directory (default: sql)
    --csv                    Also write the four CSV tables

ANALYZE OPTIONS:
    --format <fmt>           text, json, yaml, csv, xlsx, html (default: text)
    --output <dir>           Output directory, required for csv and xlsx
    --trend-by <grouping>    all or supplier (default: all)
    --include-warnings       Include recovered data problems in the output

SEED OPTIONS:
    --target <kind>          postgres, kv or csv (default: postgres)

SERVE OPTIONS:
    --port <n>               Listen port (default: 8080)
    --jwt-secret <secret>    Require bearer tokens signed with this secret

TOKEN OPTIONS:
    --subject <name>         Token subject (default: analyst)
    --ttl <duration>         Token lifetime (default: 24h)

ENVIRONMENT:
    Every config key can be set as SUPPLYCHAIN_<SECTION>_<KEY>,
    e.g. SUPPLYCHAIN_DATABASE_DSN or SUPPLYCHAIN_SERVER_JWT_SECRET.

EXAMPLES:
    # Write the demo dataset as SQL and CSV
    supplychain generate --preset demo --seed 42 --output sql --csv

    # Analyze the CSV tables
    supplychain analyze --source csv --csv-dir sql --verbose

    # Load a generated dataset into postgres, then analyze it
    supplychain seed --target postgres --dsn postgres://localhost/supplychain
    supplychain analyze --source postgres --dsn postgres://localhost/supplychain --format json

    # Write an Excel workbook with one sheet per report
    supplychain analyze --format xlsx --output reports/

    # Serve the reports behind JWT auth
    supplychain serve --jwt-secret s3cret
    supplychain token --jwt-secret s3cret
`)
}
