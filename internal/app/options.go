// Package app drives interactive practice, exam and review sessions for
// the CLI. It wires the pure core (session, assessment, srs, targeting)
// to the store and a line-oriented terminal, and is the only place where
// persistence failures are absorbed: sessions keep running when a write
// fails.
package app

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/opsprep/tcoprep/internal/logging"
	"github.com/opsprep/tcoprep/internal/question"
	"github.com/opsprep/tcoprep/internal/store"
)

// Options carries every dependency a session runner needs. One Options
// value per invocation; nothing here is global.
type Options struct {
	UserID   string
	Repo     question.Repository
	Events   store.EventRepo
	Reviews  store.ReviewRepo
	Progress store.ProgressRepo
	Log      *zap.SugaredLogger

	// In/Out default to stdin/stdout.
	In  io.Reader
	Out io.Writer

	// Rand drives shuffling; the caller owns the seed.
	Rand *rand.Rand

	// Now defaults to time.Now. Injectable for tests.
	Now func() time.Time
}

// normalize fills nil fields with defaults.
func (o *Options) normalize() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Log == nil {
		o.Log = logging.Nop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// readLine reads one trimmed, lowercased line. ok is false at EOF.
func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(scanner.Text())), true
}
