package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/mcdev12/lettersoup/go/internal/events"
	"github.com/mcdev12/lettersoup/go/internal/statebus"
)

// publish_state replays a JSON array of state envelopes onto the state stream, one per
// interval, so a seat can be exercised without a running game service.
func main() {
	var (
		file     = flag.String("file", "", "JSON file holding an array of state envelopes")
		natsURL  = flag.String("nats", nats.DefaultURL, "NATS server URL")
		stream   = flag.String("stream", statebus.DefaultStreamConfig().Name, "state stream name")
		interval = flag.Duration("interval", time.Second, "delay between snapshots")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "-file is required")
		os.Exit(2)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read JSON: %v\n", err)
		os.Exit(1)
	}
	var envelopes []events.StateEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal JSON: %v\n", err)
		os.Exit(1)
	}

	nc, err := nats.Connect(*natsURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to NATS: %v\n", err)
		os.Exit(1)
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create JetStream context: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	streamCfg := statebus.DefaultStreamConfig()
	streamCfg.Name = *stream
	if err := statebus.EnsureStream(ctx, js, streamCfg); err != nil {
		fmt.Fprintf(os.Stderr, "ensure stream: %v\n", err)
		os.Exit(1)
	}

	pub := statebus.NewPublisher(js, streamCfg.Name)
	published, errs := 0, 0
	for i, env := range envelopes {
		if i > 0 {
			time.Sleep(*interval)
		}
		if err := pub.Publish(ctx, env); err != nil {
			fmt.Fprintf(os.Stderr, "envelope %d: %v\n", i, err)
			errs++
			continue
		}
		published++
	}
	fmt.Printf("State replay: total=%d published=%d errors=%d\n", len(envelopes), published, errs)
}
