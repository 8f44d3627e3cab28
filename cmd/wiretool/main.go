package main

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/holiman/uint256"
	"lukechampine.com/uint128"

	"github.com/eigerco/serialization/internal/crypto"
	"github.com/eigerco/serialization/pkg/log"
	"github.com/eigerco/serialization/pkg/serialization/wire"
)

var errUsage = errors.New("usage: wiretool [-log-level LEVEL] varint N | unvarint HEX | pack [-width W] [-be] N | unpack [-width W] [-be] HEX | hash HEX | keygen")

type KeyPair struct {
	Ed25519Pub string `json:"ed25519_public_key"`
	Ed25519Prv string `json:"ed25519_private_key"`
}

// main runs one encoding command and prints the result.
// go run main.go varint 300
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("wiretool", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	level := fs.String("log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lvl, err := log.ParseLogLevel(*level)
	if err != nil {
		return err
	}
	log.Init(log.Options{LogLevel: lvl, Type: log.ConsoleLogger, Out: os.Stderr})

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}
	cmd, cmdArgs := rest[0], rest[1:]
	log.Root.Debug().Str("command", cmd).Strs("args", cmdArgs).Msg("running")

	switch cmd {
	case "varint":
		return varint(cmdArgs, out)
	case "unvarint":
		return unvarint(cmdArgs, out)
	case "pack":
		return pack(cmdArgs, out)
	case "unpack":
		return unpack(cmdArgs, out)
	case "hash":
		return hash(cmdArgs, out)
	case "keygen":
		return keygen(out)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func varint(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, wire.ToHex(wire.EncodeVarint(n)))
	return err
}

func unvarint(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	r, err := wire.NewReaderFromHex(args[0])
	if err != nil {
		return err
	}
	for r.Remaining() > 0 {
		v, err := r.Varint()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, v); err != nil {
			return err
		}
	}
	return nil
}

func packFlags(name string, args []string) (width int, order wire.ByteOrder, rest []string, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	w := fs.Int("width", 32, "integer width in bits: 8, 16, 32, 64, 128 or 256")
	be := fs.Bool("be", false, "big-endian")
	if err := fs.Parse(args); err != nil {
		return 0, 0, nil, err
	}
	if *be {
		order = wire.BigEndian
	}
	if fs.NArg() != 1 {
		return 0, 0, nil, errUsage
	}
	return *w, order, fs.Args(), nil
}

func pack(args []string, out io.Writer) error {
	width, order, rest, err := packFlags("pack", args)
	if err != nil {
		return err
	}

	var b []byte
	switch width {
	case 8, 16, 32, 64:
		n, err := strconv.ParseUint(rest[0], 0, width)
		if err != nil {
			return err
		}
		switch width {
		case 8:
			b = wire.Pack(uint8(n), order)
		case 16:
			b = wire.Pack(uint16(n), order)
		case 32:
			b = wire.Pack(uint32(n), order)
		default:
			b = wire.Pack(n, order)
		}
	case 128:
		n, err := uint128.FromString(rest[0])
		if err != nil {
			return err
		}
		b = wire.PackUint128(n, order)
	case 256:
		n, err := uint256.FromDecimal(rest[0])
		if err != nil {
			return err
		}
		b = wire.PackUint256(*n, order)
	default:
		return fmt.Errorf("unsupported width %d", width)
	}
	_, err = fmt.Fprintln(out, wire.ToHex(b))
	return err
}

func unpack(args []string, out io.Writer) error {
	width, order, rest, err := packFlags("unpack", args)
	if err != nil {
		return err
	}
	switch width {
	case 8, 16, 32, 64, 128, 256:
	default:
		return fmt.Errorf("unsupported width %d", width)
	}
	b, err := wire.FromHex(rest[0])
	if err != nil {
		return err
	}
	if len(b) != width/8 {
		return fmt.Errorf("%w: width %d needs %d bytes, got %d", wire.ErrSizeMismatch, width, width/8, len(b))
	}

	var n fmt.Stringer
	switch width {
	case 8:
		v, _ := wire.Unpack[uint8](b, 0, order)
		n = decimal(v)
	case 16:
		v, _ := wire.Unpack[uint16](b, 0, order)
		n = decimal(v)
	case 32:
		v, _ := wire.Unpack[uint32](b, 0, order)
		n = decimal(v)
	case 64:
		v, _ := wire.Unpack[uint64](b, 0, order)
		n = decimal(v)
	case 128:
		n, _ = wire.UnpackUint128(b, 0, order)
	case 256:
		v, _ := wire.UnpackUint256(b, 0, order)
		n = decimal256{&v}
	}
	_, err = fmt.Fprintln(out, n)
	return err
}

type decimal uint64

func (d decimal) String() string { return strconv.FormatUint(uint64(d), 10) }

type decimal256 struct{ *uint256.Int }

func (d decimal256) String() string { return d.Dec() }

func hash(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	b, err := wire.FromHex(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, crypto.HashData(b))
	return err
}

func keygen(out io.Writer) error {
	pk, sk, err := crypto.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}
	defer sk.Wipe()

	jsonData, err := json.MarshalIndent(KeyPair{Ed25519Pub: pk.String(), Ed25519Prv: sk.String()}, "", "	")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(jsonData))
	return err
}
