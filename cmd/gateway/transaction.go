package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func transactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction <provider> [request-file]",
		Short: "Send one transaction and print the canonical result",
		Long: `Reads a transaction request (JSON or YAML) from the file, or stdin when
no file is given, sends it to the provider and prints the canonical response
or error. Exits non-zero when the transaction fails.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runTransaction,
	}

	cmd.Flags().StringP("output", "o", outputJSON, "Output format (json, yaml)")
	cmd.Flags().String("amount", "", "Override the request amount in major units, e.g. 10.50")

	return cmd
}

func readRequest(cmd *cobra.Command, args []string) (*domain.TransactionRequest, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 1 && args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}

	// JSON is valid YAML, so one decoder covers both.
	var req domain.TransactionRequest
	if err := yaml.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return &req, nil
}

func runTransaction(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := cfg.Logger.NewLoggerTo(cmd.ErrOrStderr())

	req, err := readRequest(cmd, args)
	if err != nil {
		return err
	}
	if major, _ := cmd.Flags().GetString("amount"); major != "" {
		req.Amount, err = domain.ParseAmount(major, req.Amount.Currency)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc, closeFn, err := newTransactionService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	resp, err := svc.Transaction(ctx, args[0], req)
	if err != nil {
		errResp, ok := domain.IsErrorResponse(err)
		if !ok {
			return err
		}
		if rerr := render(cmd.OutOrStdout(), format, errResp); rerr != nil {
			return rerr
		}
		return fmt.Errorf("transaction %s failed: %s", req.Reference, errResp.Primary().Code)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s %s (%s)\n", args[0], resp.Status.Code, resp.Amount, resp.ID)
	return render(cmd.OutOrStdout(), format, resp)
}
