package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf16"

	"go.uber.org/zap"

	nlsengine "github.com/unitext/nls-engine"
	"github.com/unitext/nls-engine/codepage"
	"github.com/unitext/nls-engine/idn"
	"github.com/unitext/nls-engine/locale"
	"github.com/unitext/nls-engine/norm"
	"github.com/unitext/nls-engine/status"
	"github.com/unitext/nls-engine/tables"
)

func main() {
	var (
		op          = flag.String("op", "", "Operation: encode, decode, normalize, idn, locale")
		page        = flag.Uint("page", 1252, "Code page for encode/decode")
		form        = flag.String("form", "nfc", "Normalization form: nfc, nfd, nfkc, nfkd")
		mode        = flag.String("mode", "toascii", "IDN mode: toascii, tounicode, nameprep")
		std3        = flag.Bool("std3", false, "Apply STD3 ASCII rules to IDN labels")
		unassigned  = flag.Bool("allow-unassigned", false, "Permit unassigned code points in IDN labels")
		text        = flag.String("text", "", "Input text (hex bytes for decode)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			nlsengine.SetLogger(l)
			norm.SetLogger(l)
			tables.SetLogger(l)
		}
	}

	if err := nlsengine.Init(tables.Default(), 1252, 437); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *op == "" || *text == "" {
		fmt.Fprintln(os.Stderr, "Usage: nlsconv -op encode|decode -page <cp> -text <input>")
		fmt.Fprintln(os.Stderr, "       nlsconv -op normalize -form nfc|nfd|nfkc|nfkd -text <input>")
		fmt.Fprintln(os.Stderr, "       nlsconv -op idn -mode toascii|tounicode|nameprep [-std3] -text <input>")
		fmt.Fprintln(os.Stderr, "       nlsconv -op locale -text <name or 0xID>")
		fmt.Fprintln(os.Stderr, "       nlsconv -i  (interactive mode)")
		os.Exit(1)
	}

	var result string
	var err error
	switch *op {
	case "encode":
		result, err = encodePage(uint32(*page), *text)
	case "decode":
		result, err = decodePage(uint32(*page), *text)
	case "normalize":
		result, err = normalizeText(*form, *text)
	case "idn":
		result, err = idnConvert(*mode, idnFlags(*std3, *unassigned), *text)
	case "locale":
		result, err = localeLookup(*text)
	default:
		err = fmt.Errorf("unknown operation %q", *op)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result)
}

func idnFlags(std3, unassigned bool) uint32 {
	var flags uint32
	if std3 {
		flags |= idn.UseSTD3ASCIIRules
	}
	if unassigned {
		flags |= idn.AllowUnassigned
	}
	return flags
}

func loadPage(page uint32) (*codepage.Table, error) {
	blob, err := tables.Default().CodePage(page)
	if err != nil {
		return nil, err
	}
	return codepage.ParseBlob(blob)
}

// encodePage converts text to the given code page and prints the bytes as
// hex. Unmappable characters come back as the page's default character
// with an advisory note.
func encodePage(page uint32, text string) (string, error) {
	t, err := loadPage(page)
	if err != nil {
		return "", err
	}
	src := utf16.Encode([]rune(text))
	n, err := t.FromUnicode(nil, src)
	if err != nil {
		return "", err
	}
	dst := make([]byte, n)
	_, err = t.FromUnicode(dst, src)
	if status.IsSomeNotMapped(err) {
		return hex.EncodeToString(dst) + "  (some characters substituted)", nil
	}
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(dst), nil
}

// decodePage converts hex bytes in the given code page back to text.
func decodePage(page uint32, hexStr string) (string, error) {
	src, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return "", fmt.Errorf("parse hex: %w", err)
	}
	t, err := loadPage(page)
	if err != nil {
		return "", err
	}
	n, err := t.ToUnicode(nil, src)
	if err != nil {
		return "", err
	}
	dst := make([]uint16, n)
	if _, err := t.ToUnicode(dst, src); err != nil {
		return "", err
	}
	return string(utf16.Decode(dst)), nil
}

var formIDs = map[string]uint32{
	"nfc":  norm.NFC,
	"nfd":  norm.NFD,
	"nfkc": norm.NFKC,
	"nfkd": norm.NFKD,
}

func normalizeText(formName, text string) (string, error) {
	id, ok := formIDs[strings.ToLower(formName)]
	if !ok {
		return "", fmt.Errorf("unknown normalization form %q", formName)
	}
	f, err := norm.Load(tables.Default(), id)
	if err != nil {
		return "", err
	}
	src := utf16.Encode([]rune(text))
	n, err := norm.Normalize(f, nil, src)
	if err != nil {
		return "", err
	}
	dst := make([]uint16, n)
	n, err = norm.Normalize(f, dst, src)
	if status.IsBufferTooSmall(err) {
		dst = make([]uint16, n)
		n, err = norm.Normalize(f, dst, src)
	}
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(dst[:n])), nil
}

func idnConvert(mode string, flags uint32, text string) (string, error) {
	var fn func(s norm.Supplier, flags uint32, dst, src []uint16) (int, error)
	switch mode {
	case "toascii":
		fn = idn.ToASCII
	case "tounicode":
		fn = idn.ToUnicode
	case "nameprep":
		fn = idn.ToNameprepUnicode
	default:
		return "", fmt.Errorf("unknown IDN mode %q", mode)
	}
	src := utf16.Encode([]rune(text))
	n, err := fn(tables.Default(), flags, nil, src)
	if err != nil {
		return "", err
	}
	dst := make([]uint16, n)
	if _, err := fn(tables.Default(), flags, dst, src); err != nil {
		return "", err
	}
	return string(utf16.Decode(dst)), nil
}

func localeLookup(query string) (string, error) {
	blob, err := tables.Default().Locales()
	if err != nil {
		return "", err
	}
	reg, err := locale.ParseBlob(blob)
	if err != nil {
		return "", err
	}

	var entry locale.Entry
	if id, perr := strconv.ParseUint(strings.TrimPrefix(query, "0x"), 16, 32); perr == nil && strings.HasPrefix(query, "0x") {
		entry, err = reg.FindByID(uint32(id))
	} else {
		entry, err = reg.FindByName(query)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s  id=0x%04x ansi=%d oem=%d", entry.Name, entry.ID, entry.AnsiCodePage, entry.OemCodePage), nil
}
