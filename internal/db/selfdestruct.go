//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"fmt"
	"os"

	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

// SelfDestruct - purge the artifact store and the configuration files
func SelfDestruct(dbpath string) {
	const (
		DONE1 = "Deleted the artifact store '%s'"
		DONE2 = "Deleted configuration files inside '%s'"
		SKIP1 = "Nothing to delete at '%s'"
	)

	ok := youhavebeenwarned()
	if !ok {
		return
	}

	if SQLStore != nil {
		_ = SQLStore.Close()
	}

	if _, e := os.Stat(dbpath); e == nil {
		Msg.EC(os.Remove(dbpath))
		Msg.CRIT(fmt.Sprintf(DONE1, dbpath))
	} else {
		Msg.CRIT(fmt.Sprintf(SKIP1, dbpath))
	}

	hd, e := os.UserHomeDir()
	Msg.EC(e)
	cp := fmt.Sprintf(vv.CONFIGALTAPTH, hd)
	_ = os.Remove(cp + vv.CONFIGPROLIX)
	_ = os.Remove(cp + vv.CONFIGMODEL)
	_ = os.Remove(cp + vv.CONFIGSTOPS)
	Msg.CRIT(fmt.Sprintf(DONE2, cp))
}

func youhavebeenwarned() bool {
	const (
		CONF = `You are about to C5DELETEC0 the artifact store and the configuration files.
Every stored run will be C7LOSTC0 unless/until you rebuild it from the raw export.

Type C6YESC0 to confirm that you want to proceed. --> `
		NOPE = "Did not receive confirmation. Aborting..."
	)

	yes := true

	var ok string
	fmt.Printf(Msg.Color(CONF))
	_, ee := fmt.Scan(&ok)
	Msg.EC(ee)
	if ok != "YES" {
		fmt.Println(NOPE)
		yes = false
	}

	return yes
}
