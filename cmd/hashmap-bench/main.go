package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/valyala/bytebufferpool"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lojhan/hashmap"
)

const valueAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func newLogger(logFile string, debug bool) *zap.Logger {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	if logFile != "" {
		syncer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    64, // megabytes
			MaxBackups: 3,
		})
		encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		return zap.New(zapcore.NewCore(encoder, syncer, level))
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level))
}

func randomValue(rng *rand.Rand, size int) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i := 0; i < size; i++ {
		_ = buf.WriteByte(valueAlphabet[rng.Intn(len(valueAlphabet))])
	}
	return buf.String()
}

func main() {
	capacity := flag.Int("capacity", 1024, "Bucket count, fixed for the run")
	numKeys := flag.Int("keys", 100000, "Number of distinct keys to insert")
	valueSize := flag.Int("value-size", 32, "Length of each generated value")
	deleteEvery := flag.Int("delete-every", 10, "Delete every Nth key after verification (0 = no deletes)")
	seed := flag.Int64("seed", 1, "Seed for the value generator")
	logFile := flag.String("logfile", "", "Write JSON logs to this file instead of stderr")
	debug := flag.Bool("debug", false, "Enable per-key debug logging")
	flag.Parse()

	logger := newLogger(*logFile, *debug)
	defer logger.Sync()

	table, err := hashmap.NewWithCapacity(*capacity)
	if err != nil {
		logger.Fatal("Failed to create table", zap.Int("capacity", *capacity), zap.Error(err))
	}

	logger.Info("Starting hash table load run",
		zap.Int("capacity", *capacity),
		zap.Int("keys", *numKeys),
		zap.Int("value_size", *valueSize),
		zap.Int64("seed", *seed))

	rng := rand.New(rand.NewSource(*seed))
	expected := make([]string, *numKeys)

	for i := 0; i < *numKeys; i++ {
		key := fmt.Sprintf("key-%d", i)
		expected[i] = randomValue(rng, *valueSize)
		if !table.Set(key, expected[i]) {
			logger.Fatal("Set rejected a generated pair", zap.String("key", key))
		}
		logger.Debug("Stored pair", zap.String("key", key))
	}

	var verifyErr error
	for i := 0; i < *numKeys; i++ {
		key := fmt.Sprintf("key-%d", i)
		value, ok := table.Get(key)
		if !ok {
			verifyErr = multierr.Append(verifyErr, fmt.Errorf("key %s: missing after insert", key))
			continue
		}
		if value != expected[i] {
			verifyErr = multierr.Append(verifyErr, fmt.Errorf("key %s: got %q, want %q", key, value, expected[i]))
		}
	}

	deleted := 0
	if *deleteEvery > 0 {
		for i := 0; i < *numKeys; i += *deleteEvery {
			key := fmt.Sprintf("key-%d", i)
			value, ok := table.Delete(key)
			if !ok || value != expected[i] {
				verifyErr = multierr.Append(verifyErr, fmt.Errorf("key %s: delete returned %q (ok=%v), want %q", key, value, ok, expected[i]))
				continue
			}
			if _, still := table.Get(key); still {
				verifyErr = multierr.Append(verifyErr, fmt.Errorf("key %s: still present after delete", key))
			}
			deleted++
		}
	}

	stats := table.Stats()
	logger.Info("Run complete",
		zap.Int("count", stats.Count),
		zap.Int("deleted", deleted),
		zap.Float64("load_factor", stats.LoadFactor),
		zap.Int("max_chain", stats.MaxChainLen),
		zap.Int("empty_buckets", stats.EmptyBuckets))

	if verifyErr != nil {
		logger.Error("Verification failed",
			zap.Int("mismatches", len(multierr.Errors(verifyErr))),
			zap.Error(verifyErr))
		logger.Sync()
		os.Exit(1)
	}
}
