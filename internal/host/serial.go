package host

import (
	"bufio"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// UDL wire protocol: the panel listens on a TCP port, expects one request
// line carrying the upload/download code, and answers a single line:
//
//	-> UDL <codeUD>\r\n
//	<- SN <serialNumber>\r\n   on success
//	<- ERR <message>\r\n       on refusal (bad code, busy, ...)
const (
	serialRequestPrefix = "UDL "
	serialOKPrefix      = "SN "
	serialErrPrefix     = "ERR "
)

// GetSerialNumber queries a panel's serial number over TCP. All failures
// come back as an {"error": ...} reply, never as a crash.
func (s *Service) GetSerialNumber(codeUD, ip, port string) string {
	codeUD = strings.TrimSpace(codeUD)
	ip = strings.TrimSpace(ip)
	port = strings.TrimSpace(port)
	if codeUD == "" || ip == "" || port == "" {
		return errorReply("codeUD, ip and port are required")
	}
	if p, err := strconv.Atoi(port); err != nil || p < 1 || p > 65535 {
		return errorReply("invalid port")
	}

	addr := net.JoinHostPort(ip, port)
	conn, err := net.DialTimeout("tcp", addr, s.serialTimeout)
	if err != nil {
		s.log.Warn().Str("addr", addr).Err(err).Msg("serial query dial failed")
		return errorReply(err.Error())
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(s.serialTimeout)); err != nil {
		return errorReply(err.Error())
	}

	if _, err := fmt.Fprintf(conn, "%s%s\r\n", serialRequestPrefix, codeUD); err != nil {
		return errorReply(err.Error())
	}

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		s.log.Warn().Str("addr", addr).Err(err).Msg("serial query read failed")
		return errorReply(err.Error())
	}
	line = strings.TrimRight(line, "\r\n")

	switch {
	case strings.HasPrefix(line, serialOKPrefix):
		serial := strings.TrimSpace(strings.TrimPrefix(line, serialOKPrefix))
		if serial == "" {
			return errorReply("empty serial number")
		}
		return reply(map[string]string{"serialNumber": serial})
	case strings.HasPrefix(line, serialErrPrefix):
		return errorReply(strings.TrimSpace(strings.TrimPrefix(line, serialErrPrefix)))
	default:
		return errorReply("unexpected device reply")
	}
}
