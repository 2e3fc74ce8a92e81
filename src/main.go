package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jinjor/desktop-synth/src/audio"
	"github.com/jinjor/desktop-synth/src/config"
	"github.com/jinjor/desktop-synth/src/keymap"
	"golang.org/x/sync/errgroup"
)

const defaultSockFileName = "/tmp/desktop-synth.sock"

// errFrontendClosed ends the process normally once the front-end goes away.
var errFrontendClosed = errors.New("front-end closed")

type options struct {
	configPath string
	sinkName   string
	sockPath   string
	useMidi    bool
	useTerm    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML file overriding timing, wave shape and key table.")
	flag.StringVar(&opts.sinkName, "sink", "oto", "Audio output: oto or beep.")
	flag.StringVar(&opts.sockPath, "sock", defaultSockFileName, "Unix socket of the front-end; empty disables it.")
	flag.BoolVar(&opts.useMidi, "midi", false, "Play from the first MIDI input.")
	flag.BoolVar(&opts.useTerm, "term", false, "Play from the terminal keyboard; each key toggles its note.")
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	if err := run(opts); err != nil {
		log.Fatalf("error: %v\n", err)
	}
	log.Println("main() ended.")
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	keys, err := keymap.New(&cfg.Keymap)
	if err != nil {
		return err
	}
	sink, err := openSink(opts.sinkName)
	if err != nil {
		return err
	}
	defer sink.Terminate()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalCh)
	go func() {
		select {
		case sig := <-signalCh:
			log.Printf("Caught signal %s: shutting down...\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	shape := audio.NewShapeSelection(cfg.Engine.Wave)
	frame := &latestFrame{}
	loop := audio.NewLoop()
	engine := audio.NewEngine(&cfg.Engine, loop, sink, frame, shape)
	in := &inputs{events: loop, keys: keys, shape: shape}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(ctx, engine)
	})
	if opts.useMidi {
		g.Go(func() error {
			return in.forwardMidi(ctx, audio.ListenToMidiIn(ctx))
		})
	}
	if opts.useTerm {
		g.Go(func() error {
			return in.readTerminal(ctx, os.Stdin)
		})
	}
	if opts.sockPath != "" {
		g.Go(func() error {
			return withIPCConnection(ctx, opts.sockPath, func(conn net.Conn) error {
				g, ctx := errgroup.WithContext(ctx)
				g.Go(func() error {
					return receiveCommands(ctx, conn, in)
				})
				g.Go(func() error {
					return sendReports(ctx, conn, frame)
				})
				return g.Wait()
			})
		})
	}
	err = g.Wait()
	if errors.Is(err, errFrontendClosed) {
		log.Println(err)
		return nil
	}
	return err
}

func openSink(name string) (audio.Sink, error) {
	switch name {
	case "oto":
		return audio.NewOtoSink()
	case "beep":
		return audio.NewBeepSink()
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}

func withIPCConnection(ctx context.Context, sockFileName string, f func(net.Conn) error) error {
	os.Remove(sockFileName)
	listener, err := new(net.ListenConfig).Listen(ctx, "unix", sockFileName)
	if err != nil {
		return err
	}
	defer func() {
		log.Println("Closing IPC...")
		err := listener.Close()
		if err != nil && !errors.Is(err, net.ErrClosed) {
			log.Printf("error while closing listener: %v", err)
		}
		os.Remove(sockFileName)
	}()
	stop := context.AfterFunc(ctx, func() {
		listener.Close()
	})
	defer stop()
	log.Printf("start listening...\n")
	conn, err := listener.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	defer func() {
		err := conn.Close()
		if err != nil && !errors.Is(err, net.ErrClosed) {
			log.Printf("error while closing connection: %v", err)
		}
	}()
	stopConn := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stopConn()
	return f(conn)
}

func receiveCommands(ctx context.Context, conn io.Reader, in *inputs) error {
	reader := bufio.NewReader(conn)
	var line []byte
	for {
		next, isPrefix, err := reader.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		line = append(line, next...)
		if isPrefix {
			continue
		}
		command, err := parseCommand(string(line))
		line = line[:0]
		if err != nil {
			log.Printf("[WARN] malformed command: %v\n", err)
			continue
		}
		if err := in.handle(ctx, command); err != nil {
			return err
		}
	}
	log.Println("receiveCommands() ended.")
	return errFrontendClosed
}

func parseCommand(line string) ([]string, error) {
	lineStr := strings.Fields(line)
	for i, item := range lineStr {
		escaped, err := url.QueryUnescape(item)
		if err != nil {
			return nil, err
		}
		lineStr[i] = escaped
	}
	return lineStr, nil
}

func sendReports(ctx context.Context, conn io.Writer, frame *latestFrame) error {
	t := time.NewTicker(time.Second / 60)
	defer t.Stop()
	seen := uint64(0)
loop:
	for {
		select {
		case <-ctx.Done():
			log.Println("sendReports() interrupted")
			break loop
		case <-t.C:
			lines, version := frame.report(seen)
			if lines == "" {
				continue
			}
			seen = version
			if _, err := io.WriteString(conn, lines); err != nil {
				if ctx.Err() != nil {
					break loop
				}
				return fmt.Errorf("cannot send report: %w", err)
			}
		}
	}
	log.Println("sendReports() ended.")
	return nil
}
