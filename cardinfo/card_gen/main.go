package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/alovak/cardform/cardutils"
	"github.com/alovak/cardform/internal/cardgen"
	"github.com/alovak/cardform/internal/cardmsg"
	"github.com/alovak/cardform/internal/config"
	"github.com/alovak/cardform/internal/formclient"
	"github.com/alovak/cardform/internal/security"
	"github.com/alovak/cardform/scheme"
)

var (
	flagScheme  = flag.String("scheme", "visa", "card scheme to generate a test number for")
	flagBIN     = flag.String("bin", "", "number prefix; overrides -scheme's test range")
	flagLength  = flag.Int("length", 16, "number length when -bin is set (12-19)")
	flagCount   = flag.Int("count", 1, "how many numbers to generate")
	flagExpiry  = flag.String("expiry", "", "expiration date as typed, e.g. 05/31; prints an ISO 8583 authorization request")
	flagJSON    = flag.Bool("json", false, "print JSON lines")
	flagVerbose = flag.Bool("verbose", false, "print full number (otherwise masked)")
	flagShowCVV = flag.Bool("show-cvv", false, "print a demo CVV (needs -expiry and CVK_DEMO)")
	flagServer  = flag.String("server", "", "cardform API base URL; cross-check each number against it")
	flagEnv     = flag.String("env", ".env", "optional .env file")
)

type generated struct {
	Masked    string        `json:"masked"`
	Number    string        `json:"number,omitempty"`
	Formatted string        `json:"formatted,omitempty"`
	Scheme    scheme.Scheme `json:"scheme"`
	Detected  bool          `json:"detected"`
	Valid     bool          `json:"valid"`
	ISO8583   string        `json:"iso8583,omitempty"`
	CVV       string        `json:"cvv,omitempty"`
}

func main() {
	flag.Parse()
	if *flagCount <= 0 {
		fail("-count must be positive")
	}

	if *flagShowCVV && *flagExpiry == "" {
		fail("-show-cvv needs -expiry")
	}

	cfg := must1(config.Load(*flagEnv))
	utils := cardutils.New(must1(cfg.Schemes()))

	var provider security.CVVProvider
	if *flagShowCVV {
		provider = must1(security.NewDemoProvider([]byte(cfg.CVVKey)))
	}
	var cli *formclient.Client
	if *flagServer != "" {
		cli = formclient.New(*flagServer, nil)
	}

	enc := json.NewEncoder(os.Stdout)
	for i := 0; i < *flagCount; i++ {
		pan := must1(generate(*flagScheme, *flagBIN, *flagLength))
		out := must1(describe(utils, pan, *flagExpiry, *flagVerbose))
		if provider != nil {
			out.CVV = must1(demoCVV(provider, utils, pan, *flagExpiry, out.Scheme))
		}
		if cli != nil {
			must(crossCheck(context.Background(), cli, pan, out))
		}

		if *flagJSON {
			must(enc.Encode(out))
			continue
		}

		if *flagVerbose {
			fmt.Printf("PAN: %s   (WARNING: printing full PAN)\n", out.Formatted)
		} else {
			fmt.Printf("PAN: %s\n", out.Masked)
		}
		fmt.Printf("SCHEME: %s (detected: %t)  LUHN: %t\n", out.Scheme, out.Detected, out.Valid)
		if out.ISO8583 != "" {
			fmt.Printf("ISO8583(%s): %s\n", cardmsg.MTIAuthorizationRequest, out.ISO8583)
		}
		if out.CVV != "" {
			fmt.Printf("CVV(demo): %s\n", out.CVV)
		}
	}
}

// generate returns a Luhn-valid number from bin, or from the test range of
// the named scheme when bin is empty.
func generate(schemeName, bin string, length int) (string, error) {
	if bin != "" {
		return cardgen.Generate(bin, length)
	}
	s, err := scheme.Parse(schemeName)
	if err != nil {
		return "", err
	}
	return cardgen.ForScheme(s)
}

func describe(utils *cardutils.Utils, pan, rawExpiry string, verbose bool) (generated, error) {
	card := utils.Describe(pan)
	out := generated{
		Masked:   cardgen.MaskPAN(card.Number),
		Scheme:   card.Scheme,
		Detected: card.Detected,
		Valid:    card.Valid,
	}
	if verbose {
		out.Number = card.Number
		out.Formatted = card.Formatted
	}
	if rawExpiry != "" {
		c, err := cardmsg.FromInput(card.Number, rawExpiry)
		if err != nil {
			return generated{}, err
		}
		packed, err := cardmsg.Encode(c)
		if err != nil {
			return generated{}, err
		}
		out.ISO8583 = hex.EncodeToString(packed)
	}
	return out, nil
}

// demoCVV computes a CVV as long as the scheme's metadata allows.
func demoCVV(p security.CVVProvider, utils *cardutils.Utils, pan, rawExpiry string, s scheme.Scheme) (string, error) {
	c, err := cardmsg.FromInput(pan, rawExpiry)
	if err != nil {
		return "", err
	}
	width, err := security.Width(utils.Schemes(), s)
	if err != nil {
		return "", err
	}
	return p.ComputeCVV(c.Number, c.Expiry.YYMM(), width)
}

// crossCheck asks a running server about pan and fails on any disagreement
// with the local result.
func crossCheck(ctx context.Context, cli *formclient.Client, pan string, local generated) error {
	remote, err := cli.ValidateCard(ctx, pan)
	if err != nil {
		return err
	}
	if remote.Valid != local.Valid || remote.Scheme != local.Scheme || remote.Detected != local.Detected {
		return fmt.Errorf("server disagrees on %s: valid=%t scheme=%s detected=%t",
			local.Masked, remote.Valid, remote.Scheme, remote.Detected)
	}
	if local.CVV != "" {
		ok, err := cli.ValidateCVV(ctx, local.CVV, local.Scheme.String())
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("server rejects demo cvv for %s", local.Masked)
		}
	}
	return nil
}

func must(err error) {
	if err != nil {
		fail("%v", err)
	}
}
func must1[T any](v T, err error) T {
	if err != nil {
		fail("%v", err)
	}
	return v
}
func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
