package host

import (
	"bufio"
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"
)

type serialReply struct {
	SerialNumber string `json:"serialNumber"`
	Error        string `json:"error"`
}

// fakePanel listens on a loopback port and answers one UDL request
func fakePanel(t *testing.T, respond func(request string) string) (ip, port string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		line, err := bufio.NewReader(conn).ReadString('\n')
		if err != nil {
			return
		}
		answer := respond(strings.TrimRight(line, "\r\n"))
		if answer == "" {
			// Hold the connection open so the client hits its deadline
			time.Sleep(time.Second)
			return
		}
		conn.Write([]byte(answer))
	}()

	host, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatalf("Failed to split addr: %v", err)
	}
	return host, portStr
}

func mustSerial(t *testing.T, raw string) serialReply {
	t.Helper()
	var res serialReply
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		t.Fatalf("Malformed serial reply %q: %v", raw, err)
	}
	return res
}

func TestGetSerialNumber(t *testing.T) {
	s := openTestHost(t)

	ip, port := fakePanel(t, func(request string) string {
		if request != "UDL 1234" {
			return "ERR bad code\r\n"
		}
		return "SN PZ-90011\r\n"
	})

	res := mustSerial(t, s.GetSerialNumber("1234", ip, port))
	if res.Error != "" {
		t.Fatalf("Expected success, got error %q", res.Error)
	}
	if res.SerialNumber != "PZ-90011" {
		t.Errorf("Expected PZ-90011, got %q", res.SerialNumber)
	}
}

func TestGetSerialNumberDeviceError(t *testing.T) {
	s := openTestHost(t)

	ip, port := fakePanel(t, func(string) string {
		return "ERR bad code\r\n"
	})

	res := mustSerial(t, s.GetSerialNumber("9999", ip, port))
	if res.Error != "bad code" {
		t.Errorf("Expected device error surfaced, got %q", res.Error)
	}
	if res.SerialNumber != "" {
		t.Error("Expected no serial number on error")
	}
}

func TestGetSerialNumberUnexpectedReply(t *testing.T) {
	s := openTestHost(t)

	ip, port := fakePanel(t, func(string) string {
		return "HELLO\r\n"
	})

	res := mustSerial(t, s.GetSerialNumber("1234", ip, port))
	if res.Error == "" {
		t.Error("Expected error for unexpected device reply")
	}
}

func TestGetSerialNumberTimeout(t *testing.T) {
	s := openTestHost(t)
	s.SetSerialTimeout(150 * time.Millisecond)

	// Device accepts but never answers
	ip, port := fakePanel(t, func(string) string { return "" })

	start := time.Now()
	res := mustSerial(t, s.GetSerialNumber("1234", ip, port))
	if res.Error == "" {
		t.Error("Expected timeout error")
	}
	if time.Since(start) > 2*time.Second {
		t.Error("Timeout took far longer than the configured deadline")
	}
}

func TestGetSerialNumberValidation(t *testing.T) {
	s := openTestHost(t)

	tests := []struct {
		codeUD, ip, port string
	}{
		{"", "10.0.0.1", "7001"},
		{"1234", "", "7001"},
		{"1234", "10.0.0.1", ""},
		{"1234", "10.0.0.1", "notaport"},
		{"1234", "10.0.0.1", "70000000"},
	}

	for _, test := range tests {
		res := mustSerial(t, s.GetSerialNumber(test.codeUD, test.ip, test.port))
		if res.Error == "" {
			t.Errorf("Expected validation error for %+v", test)
		}
	}
}
