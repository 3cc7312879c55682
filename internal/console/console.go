// Package console implements the hierarchical text menus driving the cafe
// operations over line-oriented input.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/azurecafe/cafe-service/internal/logger"
	"github.com/azurecafe/cafe-service/internal/service"
)

// Console runs the menu loops against the cafe aggregate.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	cafe     *service.Cafe
	tokens   service.TokenService
	receipts *service.ReceiptService
	cafeName string
	eof      bool
}

// New creates a console bound to the given input and output streams.
func New(cafeName string, in io.Reader, out io.Writer, cafe *service.Cafe, tokens service.TokenService, receipts *service.ReceiptService) *Console {
	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		cafe:     cafe,
		tokens:   tokens,
		receipts: receipts,
		cafeName: cafeName,
	}
}

// Run drives the main menu until exit or end of input.
func (c *Console) Run() {
	for !c.eof {
		c.printf("\n=== Welcome to %s ===\n", c.cafeName)
		c.printf("1. Admin Login\n2. User Registration\n3. User Login\n0. Exit\n")
		switch c.readChoice() {
		case 1:
			c.adminLogin()
		case 2:
			c.registerUser()
		case 3:
			c.userLogin()
		case 0:
			c.printf("Thank you for visiting %s!\n", c.cafeName)
			return
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

func (c *Console) adminLogin() {
	username := c.readLine("Username: ")
	password := c.readLine("Password: ")

	if err := c.cafe.AdminLogin(username, password); err != nil {
		c.printf("Invalid credentials!\n")
		return
	}
	session, err := c.tokens.Issue(username, service.RoleAdmin)
	if err != nil {
		c.printErr(err)
		return
	}
	log := logger.WithSession(session.SessionID)
	log.Info().Str("username", username).Msg("Admin logged in")
	c.adminMenu(session)
}

func (c *Console) registerUser() {
	username := c.readLine("Enter new username: ")
	password := c.readLine("Enter password (min 6 chars, letters and numbers only): ")

	if _, err := c.cafe.RegisterUser(username, password); err != nil {
		c.printErr(err)
		return
	}
	c.printf("Registration successful!\n")
}

func (c *Console) userLogin() {
	username := c.readLine("Username: ")
	password := c.readLine("Password: ")

	user, err := c.cafe.Login(username, password)
	if err != nil {
		c.printf("Invalid credentials!\n")
		return
	}
	session, err := c.tokens.Issue(username, service.RoleUser)
	if err != nil {
		c.printErr(err)
		return
	}
	log := logger.WithSession(session.SessionID)
	log.Info().Str("username", username).Msg("User logged in")
	c.userMenu(user, session)
}

// sessionValid revalidates the session token before privileged menus run.
func (c *Console) sessionValid(session *service.Session) bool {
	if _, err := c.tokens.Validate(session.Token); err != nil {
		c.printf("Session expired, please log in again.\n")
		return false
	}
	return true
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) printErr(err error) {
	c.printf("Error: %s\n", err)
}

// readLine prompts and reads one input line. End of input leaves the eof
// flag set so menu loops unwind.
func (c *Console) readLine(prompt string) string {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// readChoice reads a menu choice, treating bad input and end of input as 0.
func (c *Console) readChoice() int {
	line := c.readLine("Choice: ")
	choice, err := strconv.Atoi(line)
	if err != nil {
		if c.eof {
			return 0
		}
		return -1
	}
	return choice
}

// readFloat reprompts until a number is entered.
func (c *Console) readFloat(prompt string) float64 {
	for {
		line := c.readLine(prompt)
		if c.eof {
			return 0
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v
		}
		c.printf("Please enter a number.\n")
	}
}

// readPositiveFloat reprompts until a non-negative number is entered.
func (c *Console) readPositiveFloat(prompt string) float64 {
	for {
		v := c.readFloat(prompt)
		if v >= 0 || c.eof {
			return v
		}
		c.printf("Value can NOT be negative.\n")
	}
}

// readInt reprompts until an integer is entered.
func (c *Console) readInt(prompt string) int {
	for {
		line := c.readLine(prompt)
		if c.eof {
			return 0
		}
		v, err := strconv.Atoi(line)
		if err == nil {
			return v
		}
		c.printf("Please enter a whole number.\n")
	}
}

func (c *Console) readYesNo(prompt string) bool {
	answer := c.readLine(prompt)
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}
