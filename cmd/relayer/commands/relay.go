package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/tendermint/light-relayer/config"
	"github.com/tendermint/light-relayer/internal/evm"
	"github.com/tendermint/light-relayer/internal/fees"
	"github.com/tendermint/light-relayer/internal/relayer"
	"github.com/tendermint/light-relayer/libs/log"
	"github.com/tendermint/light-relayer/light/provider"
	lighthttp "github.com/tendermint/light-relayer/light/provider/http"
	"github.com/tendermint/light-relayer/light/provider/snapshot"
	"github.com/tendermint/light-relayer/light/store"
	dbs "github.com/tendermint/light-relayer/light/store/db"
)

const replayFlag = "replay"

// MakeRelayCommand returns the command that creates the light client when
// there is none and relays source headers to it.
func MakeRelayCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Create the light client if needed and relay headers to it",
		Long: `Create the light client if needed and relay headers to it.

The first header fetched creates the client, every following one updates it.
The trust state is saved in the database after each confirmed transaction,
so a stopped relayer resumes where it left off.

With --replay, headers are read from a directory of saved snapshots
(see relay.save_headers) instead of the source RPC.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			replayDir, err := cmd.Flags().GetString(replayFlag)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runRelay(ctx, conf, logger, replayDir)
		},
	}
	addRelayFlags(cmd, conf)
	return cmd
}

// addRelayFlags exposes the settings most often overridden per run.
func addRelayFlags(cmd *cobra.Command, conf *config.Config) {
	cmd.Flags().String(replayFlag, "", "relay saved snapshots from this directory instead of the source RPC")
	cmd.Flags().String("source.rpc_address", conf.Source.RPCAddress, "RPC address of the Tendermint node")
	cmd.Flags().String("source.chain_id", conf.Source.ChainID, "expected chain id of the source headers")
	cmd.Flags().Int64("source.from_height", conf.Source.FromHeight, "first height to relay")
	cmd.Flags().String("destination.rpc_address", conf.Destination.RPCAddress, "JSON-RPC address of the EVM node")
	cmd.Flags().Int("relay.max_headers", conf.Relay.MaxHeaders, "headers relayed before exiting, 0 for no limit")
	cmd.Flags().Bool("relay.non_adjacent_test", conf.Relay.NonAdjacentTest, "make the first update non-adjacent")
	cmd.Flags().Bool("relay.save_headers", conf.Relay.SaveHeaders, "save the fetched headers to relay.snapshot_dir")
	cmd.Flags().String("relay.client_id", conf.Relay.ClientID, "update this client instead of creating one")
	cmd.Flags().Int64("relay.trusted_height", conf.Relay.TrustedHeight, "height trusted by relay.client_id")
}

func runRelay(ctx context.Context, conf *config.Config, logger log.Logger, replayDir string) error {
	rcfg, err := conf.RelayerConfig()
	if err != nil {
		return err
	}

	source, err := newSource(conf, logger, replayDir)
	if err != nil {
		return err
	}

	key, err := evm.LoadOrCreateKey(conf.Destination.KeyFilePath())
	if err != nil {
		return err
	}
	dest, err := evm.Dial(ctx, conf.Destination.RPCAddress, key, conf.Destination.EVMConfig(),
		evm.WithLogger(logger.With("module", "evm")))
	if err != nil {
		return err
	}

	db, err := conf.OpenDB()
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	st := dbs.New(db)

	relayerMetrics, feeMetrics := relayer.NopMetrics(), fees.NopMetrics()
	if conf.Instrumentation.Prometheus {
		ns := conf.Instrumentation.Namespace
		relayerMetrics = relayer.PrometheusMetrics(ns, "chain_id", conf.Source.ChainID)
		feeMetrics = fees.PrometheusMetrics(ns, "chain_id", conf.Source.ChainID)
		srv := startPrometheusServer(conf.Instrumentation.PrometheusListenAddr, logger)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(sctx); err != nil {
				logger.Error("Prometheus HTTP server Shutdown", "err", err)
			}
		}()
	}

	reporter := fees.NewReporter(conf.Fees.GasPriceHint, conf.Fees.USDPriceHint,
		fees.WithLogger(logger), fees.WithMetrics(feeMetrics))
	reporter.Start(ctx)
	defer reporter.Stop()

	r, err := relayer.New(rcfg, source, dest,
		relayer.WithStore(st),
		relayer.WithLogger(logger),
		relayer.WithMetrics(relayerMetrics),
		relayer.WithReceiptHook(reporter.Report),
	)
	if err != nil {
		return err
	}

	logger.Info("starting relayer", "source", source.String(), "from", dest.From().Hex(), "state", r.TrustState().String())
	runErr := r.Run(ctx)

	reporter.Stop()
	prune(st, conf.Relay.KeepRecords, logger)

	total, txs := reporter.Total()
	logger.Info("relayer stopped",
		"cycles", r.Cycles(),
		"state", r.TrustState().String(),
		"txs", txs,
		"gas_used", total.GasUsed,
		"fee", total.Native,
		"fee_usd", total.USD,
		"dropped", reporter.Dropped(),
	)

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

func newSource(conf *config.Config, logger log.Logger, replayDir string) (provider.Provider, error) {
	if replayDir != "" {
		return snapshot.New(replayDir), nil
	}
	return lighthttp.New(conf.Source.ChainID, conf.Source.RPCAddress,
		lighthttp.MaxRetryAttempts(conf.Source.MaxRetryAttempts),
		lighthttp.RetryInterval(conf.Source.RetryInterval),
		lighthttp.Logger(logger.With("module", "provider")),
	)
}

func prune(st store.Store, keep uint64, logger log.Logger) {
	if keep == 0 {
		return
	}
	if err := st.Prune(keep); err != nil {
		logger.Error("failed to prune relay records", "err", err)
	}
}

// startPrometheusServer starts a Prometheus HTTP server, listening for metrics
// collectors on addr.
func startPrometheusServer(addr string, logger log.Logger) *http.Server {
	srv := &http.Server{
		Addr: addr,
		Handler: promhttp.InstrumentMetricHandler(
			prometheus.DefaultRegisterer, promhttp.HandlerFor(
				prometheus.DefaultGatherer,
				promhttp.HandlerOpts{},
			),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Prometheus HTTP server ListenAndServe", "err", err)
		}
	}()
	return srv
}
