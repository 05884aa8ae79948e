package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var command = flag.String("c", "room", "specifies the command (room)")
var server = flag.String("server", "http://localhost:3000", "the server base URL")

var pinRx = regexp.MustCompile(`^\d{4}$`)

func main() {
	flag.Parse()

	switch *command {
	case "room":
		pin := getPin()
		if pin == "" {
			os.Exit(1)
		}

		numPlayers, err := getInput("Players (3/4)")
		if err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}

		if numPlayers == "" {
			numPlayers = "4"
		}

		roomID, err := createRoom(*server, pin, numPlayers)
		if err != nil {
			logrus.WithError(err).Fatal("could not create room")
		}

		fmt.Printf("Created room %s\n", roomID)
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func createRoom(server, pin, numPlayers string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"hostPassword": pin,
		"numPlayers":   numPlayers,
	})
	if err != nil {
		return "", err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(strings.TrimRight(server, "/")+"/api/create-room", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		RoomID  string `json:"roomId"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server responded %d: %s", resp.StatusCode, payload.Message)
	}

	return payload.RoomID, nil
}

func getPin() string {
	for {
		fmt.Print("Host password: ")
		pinBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			logrus.WithError(err).Warn("could not read password")
			return ""
		}
		fmt.Println("")

		pin := strings.TrimRight(string(pinBytes), "\r\n")

		if pin == "" {
			return ""
		}

		if !pinRx.MatchString(pin) {
			_, _ = fmt.Fprintf(os.Stderr, "password must be exactly 4 digits\n")
			continue
		}

		return pin
	}
}

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	reader := bufio.NewReader(os.Stdin)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}
