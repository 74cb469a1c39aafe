//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"text/template"

	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

var (
	Config *str.CurrentConfiguration
	Msg    = NewMessageMakerWithDefaults()
)

// LookForConfigFile - test to see if we can find a config file; if not, write one with the defaults
func LookForConfigFile() {
	_, a := os.Stat(vv.CONFIGBASIC)

	var b error
	var c error

	h, e := os.UserHomeDir()
	if e != nil {
		// how likely is this...?
		b = errors.New("cannot find UserHomeDir")
		c = errors.New("cannot find UserHomeDir")
	} else {
		_, b = os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC)
		_, c = os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGPROLIX)
	}

	notfound := (a != nil) && (b != nil) && (c != nil)

	if notfound {
		WriteDefaultConfig(h)
	}
}

// WriteDefaultConfig - put a default prolix configuration into the home config directory
func WriteDefaultConfig(h string) {
	const (
		MSG1 = "wrote default configuration file to '%s'"
		ERR1 = "WriteDefaultConfig() could not write '%s'"
	)

	cfg := BuildDefaultConfig()
	content, err := json.MarshalIndent(cfg, vv.JSONINDENT, vv.JSONINDENT)
	Msg.EC(err)

	p := fmt.Sprintf(vv.CONFIGALTAPTH, h)
	if _, e := os.Stat(p); e != nil {
		err = os.MkdirAll(p, os.FileMode(0700))
		Msg.EC(err)
	}

	err = os.WriteFile(p+vv.CONFIGPROLIX, content, vv.WRITEPERMS)
	if err != nil {
		Msg.CRIT(fmt.Sprintf(ERR1, p+vv.CONFIGPROLIX))
		return
	}
	Msg.MAND(fmt.Sprintf(MSG1, p+vv.CONFIGPROLIX))
}

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL5 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL6 = "Could not open '%s'"
		FAIL7 = "ConfigAtLaunch() failed to execute help text template"
	)

	Config = BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	prolixcfg := fmt.Sprintf("%s%s", h, vv.CONFIGPROLIX)

	loadedcfg, e := os.Open(prolixcfg)
	if e != nil {
		Msg.TMI(fmt.Sprintf(FAIL6, prolixcfg))
	}

	decoderc := json.NewDecoder(loadedcfg)
	confc := str.CurrentConfiguration{}
	errc := decoderc.Decode(&confc)
	_ = loadedcfg.Close()

	if errc == nil {
		Config = &confc
	} else {
		Msg.CRIT(fmt.Sprintf(FAIL3, prolixcfg))
	}

	// a hand-edited CONFIGPROLIX can zero fields that must never be zero
	if Config.WorkerCount == 0 {
		Config.WorkerCount = runtime.NumCPU()
	}

	if Config.ArtifactDB == "" {
		Config.ArtifactDB = vv.DBFILENAME
	}

	if Config.Input == "" {
		Config.Input = vv.DEFAULTSURVEYEXPORT
	}

	args := os.Args[1:len(os.Args)]

	help := func() {
		PrintVersion(*Config)
		PrintBuildInfo(*Config)

		m := map[string]interface{}{
			"conffile":  vv.CONFIGPROLIX,
			"cpus":      runtime.NumCPU(),
			"dbf":       Config.ArtifactDB,
			"home":      h,
			"input":     Config.Input,
			"modelfile": vv.CONFIGMODEL,
			"projurl":   vv.PROJURL,
			"stgll":     Config.LogLevel,
			"workers":   Config.WorkerCount}

		t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

		var b bytes.Buffer
		if ee := t.Execute(&b, m); ee != nil {
			Msg.CRIT(FAIL7)
		}
		fmt.Println(Msg.Styled(Msg.Color(b.String())))

		os.Exit(0)
	}

	var cf string

	for i, a := range args {
		switch a {
		case "-vv":
			PrintVersion(*Config)
			PrintBuildInfo(*Config)
			os.Exit(1)
		case "-v":
			fmt.Println(vv.VERSION + VersSuppl)
			os.Exit(1)
		case "-ap":
			Config.ArtifactDB = args[i+1]
		case "-bw":
			Config.BlackAndWhite = true
		case "-cf":
			cf = args[i+1]
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LogLevel = ll
		case "-h":
			help()
		case "-in":
			Config.Input = args[i+1]
		case "-pc":
			Config.ProfileCPU = true
		case "-pm":
			Config.ProfileMEM = true
		case "-q":
			Config.QuietStart = true
		case "-rs":
			Config.ResetStore = true
		case "-st":
			Config.SelfTest += 1
		case "-wc":
			wc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.WorkerCount = wc
		case "-00":
			Config.SelfDestruct = true
		default:
			// do nothing
		}
	}

	if cf != "" {
		ReadOverrideConfig(cf)
	}

	y := ""
	if errc != nil {
		y = " *not*"
	}
	Msg.TMI(fmt.Sprintf("'%s%s'%s loaded", h, vv.CONFIGPROLIX, y))

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL5, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}

	UpdateMessageMakerWithConfig(Msg)
}

// ReadOverrideConfig - "-cf {file}" swaps in a specific configuration file whole
func ReadOverrideConfig(cf string) {
	const (
		FAIL1 = `Could not open the requested configuration file '%s'`
		FAIL2 = `Could not parse the information in '%s'`
	)

	loaded, e := os.Open(cf)
	if e != nil {
		Msg.CRIT(fmt.Sprintf(FAIL1, cf))
		return
	}

	decoder := json.NewDecoder(loaded)
	conf := str.CurrentConfiguration{}
	err := decoder.Decode(&conf)
	_ = loaded.Close()

	if err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL2, cf))
		return
	}
	Config = &conf
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.ArtifactDB = vv.DBFILENAME
	c.BlackAndWhite = false
	c.Input = vv.DEFAULTSURVEYEXPORT
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.ManualGC = false
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.ResetStore = false
	c.SelfDestruct = false
	c.SelfTest = 0
	c.TickerActive = false
	c.WorkerCount = runtime.NumCPU()
	return &c
}
