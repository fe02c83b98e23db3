// Command pricecheck はサーバーと同じ検索パイプラインをコマンドラインから実行します。
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pricecheck_backend/internal/app/di"
	"pricecheck_backend/internal/feature/pricing/domain"
	"pricecheck_backend/internal/feature/pricing/domain/entity"
	pricehandler "pricecheck_backend/internal/feature/pricing/transport/handler"
	"pricecheck_backend/internal/feature/pricing/usecase"
	"pricecheck_backend/internal/platform/logging"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Println("[WARN] failed to load .env:", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	output string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "pricecheck",
		Short:         "Look up typical retail prices for an item",
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if opts.output != "json" && opts.output != "yaml" {
				return fmt.Errorf("unsupported output format %q (want json or yaml)", opts.output)
			}
			cfg := logging.LoadConfig()
			if cfg.Level == "info" {
				// 標準出力を結果に使うためログは警告以上のみ
				cfg.Level = "warn"
			}
			_, err := logging.Setup(cfg)
			return err
		},
	}
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "json", "output format: json or yaml")

	root.AddCommand(
		&cobra.Command{
			Use:   "search <item name>",
			Short: "Search prices by item name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, opts, func(ctx context.Context, uc pricehandler.SearchUsecase) (entity.SearchOutcome, bool) {
					return uc.Search(ctx, args[0]), false
				})
			},
		},
		&cobra.Command{
			Use:   "scan <image file>",
			Short: "Identify the item in an image and search its prices",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}
				payload := base64.StdEncoding.EncodeToString(data)
				return run(cmd, opts, func(ctx context.Context, uc pricehandler.SearchUsecase) (entity.SearchOutcome, bool) {
					return uc.Scan(ctx, usecase.ScanRequest{Image: payload}), true
				})
			},
		},
	)
	return root
}

func run(cmd *cobra.Command, opts *options, do func(context.Context, pricehandler.SearchUsecase) (entity.SearchOutcome, bool)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	uc, cleanup, err := di.NewSearchUsecase(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out, scan := do(ctx, uc)
	if err := write(cmd.OutOrStdout(), opts.output, responseBody(out, scan)); err != nil {
		return err
	}
	if out.Status == entity.StatusInvalidRequest || out.Status == entity.StatusInternalError {
		return fmt.Errorf("%s: %s", out.Status, out.Reason)
	}
	return nil
}

// responseBody はHTTP APIと同じ形のレスポンスを組み立てます。
func responseBody(out entity.SearchOutcome, scan bool) any {
	switch out.Status {
	case entity.StatusSuccess:
		return map[string]any{
			"item_name":  out.ItemName,
			"price_info": pricehandler.ToPriceInfo(out.Summary),
			"status":     out.Status.String(),
		}
	case entity.StatusNoPricesFound:
		m := map[string]any{
			"item_name":  out.ItemName,
			"price_info": nil,
			"status":     out.Status.String(),
		}
		if scan {
			m["message"] = domain.MsgNoPricesFound
		}
		return m
	case entity.StatusRecognitionFailed:
		return map[string]any{
			"status":  out.Status.String(),
			"message": domain.MsgRecognitionFailed,
		}
	default:
		return map[string]any{"error": out.Reason}
	}
}

func write(w io.Writer, format string, body any) error {
	// DTOのjsonタグをYAMLのキーにも使うため、一度JSONに変換する
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	if format == "yaml" {
		b, err = yaml.JSONToYAML(b)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
