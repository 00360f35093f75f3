package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"strings"

	"github.com/adrianliechti/tts-gateway/pkg/client"

	"github.com/google/uuid"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:5000", "server url")
	voiceFlag := flag.String("voice", "", "voice name (elevenlabs)")
	languageFlag := flag.String("language", "", "language code (sarvam)")
	sarvamFlag := flag.Bool("sarvam", false, "use the sarvam provider")

	flag.Parse()

	ctx := context.Background()

	c := client.New(*urlFlag)

	health, err := c.Health.Get(ctx)

	if err != nil {
		panic(err)
	}

	fmt.Println("server status: " + health.Status)

	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

LOOP:
	for {
		output.WriteString(">>> ")
		input, err := reader.ReadString('\n')

		if err != nil {
			return
		}

		input = strings.TrimSpace(input)

		if input == "" {
			continue LOOP
		}

		req := client.SynthesizeRequest{
			Text: input,

			Voice:    *voiceFlag,
			Language: *languageFlag,
		}

		var synthesis *client.Synthesis

		if *sarvamFlag {
			synthesis, err = c.Syntheses.NewSarvam(ctx, req)
		} else {
			synthesis, err = c.Syntheses.New(ctx, req)
		}

		if err != nil {
			output.WriteString(err.Error() + "\n")
			continue LOOP
		}

		name := uuid.New().String()

		if ext, _ := mime.ExtensionsByType(synthesis.ContentType); len(ext) > 0 {
			name += ext[0]
		} else {
			name += ".mp3"
		}

		os.WriteFile(name, synthesis.Content, 0600)
		fmt.Println("Saved: " + name)

		output.WriteString("\n")
	}
}
