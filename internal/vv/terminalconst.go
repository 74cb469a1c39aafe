//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2024-26"
	PROJAUTH = "E. Gunderson"
	PROJMAIL = "Department of Classics, 125 Queen’s Park, Toronto, ON  M5S 2C7 Canada"
	PROJURL  = "https://github.com/e-gun/SurveyTopicsGo"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-apC0 C2{path}C0   artifact store location [C6currentC0: C3{{.dbf}}C0]
   C1-bwC0          disable color output in the console
   C1-cfC0 C2{file}C0   read a specific configuration file
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.stgll}}C0]
   C1-hC0           print this help information
   C1-inC0 C2{path}C0   survey export to process [C6currentC0: C3{{.input}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pmC0          enable MEM profiling run
   C1-qC0           quiet startup: suppress copyright notice
   C1-rsC0          reset the stored artifact tables
   C1-stC0          process the embedded sample survey and report the sweep
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit
   C1-wcC0 C2{int}C0    number of sweep workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]
   C1-00C0          completely erase the artifact store and quit
                   every stored run, matrix, and model goes with it

     S1NB:S0 model settings (K grid, seeds, priors) live in "C3{{.modelfile}}C0";
         a properly formatted version of "C3{{.conffile}}C0" in "C3{{.home}}C0" configures everything for you.
         See the sample configuration files at
             C3{{.projurl}}C0
`
)
