package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	ledbadge "github.com/ledbadge/ledbadge-go"
)

func main() {
	var (
		speed      = flag.String("speed", "4", "scroll speed 1..8, up to 8 comma-separated values")
		mode       = flag.String("mode", "0", "display mode 0..8: scroll-left(0) -right(1) -up(2) -down(3), still(4), animation(5), drop-down(6), curtain(7), laser(8)")
		blink      = flag.String("blink", "0", "1: blinking, 0: normal; up to 8 comma-separated values")
		ants       = flag.String("ants", "0", "1: animated border, 0: normal; up to 8 comma-separated values")
		brightness = flag.Int("brightness", 100, "display brightness in percent: 25, 50, 75 or 100")
		threshold  = flag.Int("threshold", 128, "luma 1..255 at which an image pixel lights an LED")
		listIcons  = flag.Bool("list-icons", false, "list built-in icon names and exit")
		listBadges = flag.Bool("list-badges", false, "list connected badges and exit")
		outPath    = flag.String("out", "", "write the protocol buffer to a file instead of a badge")
		device     = flag.Int("device", 0, "zero-based index of the badge to program")
		timeout    = flag.Duration("timeout", 30*time.Second, "overall USB write timeout")
	)
	flag.Usage = usage
	flag.Parse()

	if *listIcons {
		names := ledbadge.IconNames()
		fmt.Println("Available icons:")
		fmt.Println(":" + strings.Join(names, ":  :") + ":")
		fmt.Println()
		fmt.Println("Custom images work too: :path/to/icon.png:")
		return
	}
	if *listBadges {
		badges, err := ledbadge.ListBadges()
		if err != nil {
			exitf("list badges: %v", err)
		}
		if len(badges) == 0 {
			fmt.Println("no badges found")
			return
		}
		for i, b := range badges {
			fmt.Printf("%d: %s\n", i, b)
		}
		return
	}

	texts := flag.Args()
	if len(texts) == 0 {
		exitf("at least one message argument is required (try -h)")
	}
	if *threshold < 1 || *threshold > 255 {
		exitf("-threshold must be 1..255: %d", *threshold)
	}

	speeds, err := splitToInts(*speed)
	if err != nil {
		exitf("invalid -speed: %v", err)
	}
	modes, err := splitToInts(*mode)
	if err != nil {
		exitf("invalid -mode: %v", err)
	}
	blinks, err := splitToInts(*blink)
	if err != nil {
		exitf("invalid -blink: %v", err)
	}
	antsVals, err := splitToInts(*ants)
	if err != nil {
		exitf("invalid -ants: %v", err)
	}

	loader := ledbadge.FileLoader{Threshold: uint8(*threshold)}
	msgs := make([]ledbadge.Message, 0, len(texts))
	for i, text := range texts {
		bm, err := ledbadge.ComposeMessage(text, loader)
		if err != nil {
			exitf("compose message %d: %v", i+1, err)
		}
		msgs = append(msgs, ledbadge.Message{
			Bitmap: bm,
			Mode:   uint8(pick(modes, i)),
			Speed:  uint8(pick(speeds, i)),
			Blink:  uint8(pick(blinks, i)),
			Ants:   uint8(pick(antsVals, i)),
		})
	}

	buf, err := ledbadge.BuildBuffer(msgs, *brightness, time.Now())
	if err != nil {
		exitf("build buffer: %v", err)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, buf, 0o644); err != nil {
			exitf("write %s: %v", *outPath, err)
		}
		fmt.Printf("wrote %d bytes to %s\n", len(buf), *outPath)
		return
	}

	dev, err := ledbadge.Open(ledbadge.DeviceIndex(*device))
	if err != nil {
		exitf("open badge: %v", err)
	}
	defer dev.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	fmt.Printf("badge: %s\n", dev.Description())
	if err := dev.Write(ctx, buf); err != nil {
		exitf("write badge: %v", err)
	}
	fmt.Printf("sent %d message(s), %d bytes\n", len(msgs), len(buf))
}

// splitToInts parses a comma or whitespace-separated list of numbers.
func splitToInts(list string) ([]int, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty value list")
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// pick returns the i-th value, repeating the last one when the list is
// shorter than the message count.
func pick(vals []int, i int) int {
	if i >= len(vals) {
		return vals[len(vals)-1]
	}
	return vals[i]
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] MESSAGE...\n\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "Upload up to 8 messages to an 11x44 USB LED badge. Messages may embed")
	fmt.Fprintln(flag.CommandLine.Output(), "built-in icons or image files between colons, e.g. 'I:heart:you'.")
	fmt.Fprintln(flag.CommandLine.Output())
	flag.PrintDefaults()
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
