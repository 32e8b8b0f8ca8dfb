// This file is part of Gopher83.
//
// Gopher83 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher83 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher83.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopher83/debugger"
	"github.com/jetsetilly/gopher83/hardware/memory"
	"github.com/jetsetilly/gopher83/hardware/model"
	"github.com/jetsetilly/gopher83/hardware/preferences"
	"github.com/jetsetilly/gopher83/logger"
	"github.com/jetsetilly/gopher83/modalflag"
	"github.com/jetsetilly/gopher83/prefs"
	"github.com/jetsetilly/gopher83/statsview"
	"github.com/jetsetilly/gopher83/symbols"
	"github.com/jetsetilly/gopher83/vat"
	"github.com/jetsetilly/gopher83/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	err := launch(md)
	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(10)
	}
}

func launch(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("VAT", "ANS", "SYMBOLS", "PREFS", "VERSION")
	md.AdditionalHelp(version.Summary())
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	switch md.Mode() {
	case "VAT":
		err = listVAT(md)
	case "ANS":
		err = lastAnswer(md)
	case "SYMBOLS":
		err = listSymbols(md)
	case "PREFS":
		err = showPrefs(md)
	case "VERSION":
		fmt.Fprintln(md.Output, version.Summary())
	}

	return err
}

// ramFlags are the flags shared by the modes that read a RAM dump.
type ramFlags struct {
	model  *string
	log    *bool
	memviz *string
}

func addRAMFlags(md *modalflag.Modes) ramFlags {
	return ramFlags{
		model:  md.AddString("model", "TI-83 Plus", "calculator model of the RAM dump"),
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
		memviz: md.AddString("memviz", "", "write a graphviz description of the address space to file"),
	}
}

// loadRAM reads the RAM dump named on the command line into the address
// space of the model. The first page of the dump is mapped into bank 3 and
// the second into bank 2, as it is when the operating system is running.
func loadRAM(md *modalflag.Modes, f ramFlags) (*memory.AddressSpace, model.Model, error) {
	if *f.log {
		logger.SetEcho(md.Output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	m, err := model.Parse(*f.model)
	if err != nil {
		return nil, m, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, m, fmt.Errorf("RAM dump required for %s mode", md)
	case 1:
	default:
		return nil, m, fmt.Errorf("too many arguments for %s mode", md)
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, m, err
	}

	as, code := memory.NewAddressSpace(m)
	if !code.OK() {
		return nil, m, fmt.Errorf("cannot create memory for %s: %s", m, code)
	}

	n := as.RAM.Load(data)
	if n < len(data) {
		logger.Logf(logger.Allow, "gopher83", "RAM dump truncated to %d bytes", n)
	}

	err = as.ChangePage(2, 1, true)
	if err != nil {
		return nil, m, err
	}

	if *f.memviz != "" {
		err = debugger.MemvizFile(*f.memviz, as)
		if err != nil {
			return nil, m, err
		}
	}

	return as, m, nil
}

func listVAT(md *modalflag.Modes) error {
	md.NewMode()
	f := addRAMFlags(md)
	raw := md.AddBool("raw", false, "list symbol descriptors without decoding values")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	as, m, err := loadRAM(md, f)
	if err != nil {
		return err
	}

	if *raw {
		tab, err := vat.Scan(as, m)
		if err != nil {
			return err
		}
		for i, s := range tab.Symbols {
			fmt.Fprintf(md.Output, "%3d: %s\n", i, s)
		}
		return nil
	}

	vars, err := vat.Variables(as, m)
	if err != nil {
		return err
	}

	w := 0
	for _, v := range vars {
		w = max(w, len(v.Name))
	}

	for _, v := range vars {
		// multi-line values are indented to line up with the first line
		val := strings.ReplaceAll(v.Value, "\n", "\n"+strings.Repeat(" ", w+10))
		fmt.Fprintf(md.Output, "%-*s %-8s %s\n", w, v.Name, vat.TypeName(v.Type), val)
	}

	return nil
}

func lastAnswer(md *modalflag.Modes) error {
	md.NewMode()
	f := addRAMFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	as, m, err := loadRAM(md, f)
	if err != nil {
		return err
	}

	ans, err := vat.Ans(as, m)
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, ans)

	return nil
}

func listSymbols(md *modalflag.Modes) error {
	md.NewMode()
	file := md.AddString("file", "", "assembler symbol file to add to the operating system symbols")
	page := md.AddInt("page", 0, "page of the symbols in the symbol file")
	ram := md.AddBool("ram", false, "symbols in the symbol file are in RAM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	lbl := symbols.NewLabels()
	if *file != "" {
		err = lbl.ReadFile(*file, *page, *ram)
		if err != nil {
			return err
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		lbl.Write(md.Output)
	case 1:
		r := lbl.Search(md.GetArg(0))
		if r == nil {
			return fmt.Errorf("no symbol named %s", md.GetArg(0))
		}
		fmt.Fprintf(md.Output, "%s %s\n", r.Symbol, r.Address)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

// showPrefs prints the hardware preferences. Arguments of the form
// key::value override the stored values and are saved if the save flag is
// set.
func showPrefs(md *modalflag.Modes) error {
	md.NewMode()
	save := md.AddBool("save", false, "save the preferences after applying any arguments")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		prefs.PushCommandLineStack(strings.Join(md.RemainingArgs(), ";"))
		defer prefs.PopCommandLineStack()
	}

	pref, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	if *save {
		err = pref.Save()
		if err != nil {
			return err
		}
	}

	fmt.Fprint(md.Output, pref.String())

	return nil
}
