package zabbix

import "os/exec"

// Log sends counter values to a Zabbix server through zabbix_sender.
type Log struct {
	Server string
	Host   string // name this host reports under
}

func (z Log) Send(key, value string) error {
	return exec.Command("zabbix_sender",
		"-z", z.Server,
		"-s", z.Host,
		"-k", key,
		"-o", value).Run()
}
