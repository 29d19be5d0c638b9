// This file contains the help command and the command reference it
// prints from.
package cli

import (
	"fmt"
)

// printHelp prints the help message based on the provided arguments
func (c *CLI) printHelp(args []string) {
	switch len(args) {
	case 0:
		c.showGeneralHelp()
	case 1:
		c.showScopeHelp(args[0])
	case 2:
		c.showOperationHelp(args[0], args[1])
	default:
		fmt.Println("Invalid help command. Use 'help [scope] [operation]'")
	}
}

// showGeneralHelp displays an overview of all available commands grouped by scope
func (c *CLI) showGeneralHelp() {
	fmt.Println("Command syntax: <scope> <operation> [arguments]")
	fmt.Println("\nAvailable commands:")
	currentScope := ""
	for _, cmd := range commandHelps {
		if cmd.Scope != currentScope {
			fmt.Printf("\n%s:\n", cmd.Scope)
			currentScope = cmd.Scope
		}
		fmt.Printf("  %-10s %s\n", cmd.Operation, cmd.ShortDesc)
	}
	fmt.Println("\nUse 'help <scope> <operation>' for details, 'exit' or 'quit' to leave.")
}

// showScopeHelp displays help information for all commands within a specific scope
func (c *CLI) showScopeHelp(scope string) {
	fmt.Printf("Commands for %s:\n\n", scope)
	for _, cmd := range commandHelps {
		if cmd.Scope == scope {
			fmt.Printf("%-10s %s\n", cmd.Operation, cmd.ShortDesc)
		}
	}
}

// showOperationHelp displays detailed help information for a specific operation within a scope
func (c *CLI) showOperationHelp(scope, operation string) {
	for _, cmd := range commandHelps {
		if cmd.Scope == scope && cmd.Operation == operation {
			fmt.Printf("Command: %s %s\n", scope, operation)
			fmt.Printf("Description: %s\n", cmd.LongDesc)
			fmt.Printf("Syntax: %s\n", cmd.Syntax)
			if len(cmd.Arguments) > 0 {
				fmt.Println("Arguments:")
				for _, arg := range cmd.Arguments {
					fmt.Printf("  %s\n", arg)
				}
			}
			if len(cmd.Examples) > 0 {
				fmt.Println("Examples:")
				for _, ex := range cmd.Examples {
					fmt.Printf("  %s\n", ex)
				}
			}
			return
		}
	}
	fmt.Printf("No help found for %s %s\n", scope, operation)
}

// CommandHelp represents the structure of help information for a specific command.
type CommandHelp struct {
	Scope     string
	Operation string
	ShortDesc string
	LongDesc  string
	Syntax    string
	Arguments []string
	Examples  []string
}

// commandHelps is a slice of CommandHelp structs containing help information for all commands.
var commandHelps = []CommandHelp{
	{
		Scope:     "user",
		Operation: "register",
		ShortDesc: "Create a new account",
		LongDesc:  "Creates a new account and logs it in. The password may be omitted to enter it without echo.",
		Syntax:    "user register <name> <email> <phone> [password]",
		Arguments: []string{"name: Full name, quoted if it contains spaces", "email: Unique email address", "phone: Digits only", "password: At least 6 characters with an uppercase letter, a lowercase letter and a digit"},
		Examples:  []string{"user register \"Ana Silva\" ana@example.com 11999990000"},
	},
	{
		Scope:     "user",
		Operation: "login",
		ShortDesc: "Log into an account",
		LongDesc:  "Authenticates with email and password. The password may be omitted to enter it without echo.",
		Syntax:    "user login <email> [password]",
		Arguments: []string{"email: The account email", "password: The account password"},
		Examples:  []string{"user login ana@example.com"},
	},
	{
		Scope:     "user",
		Operation: "logout",
		ShortDesc: "Log out of the current account",
		LongDesc:  "Clears the logged-in user. Task commands fall back to the guest scope.",
		Syntax:    "user logout",
		Examples:  []string{"user logout"},
	},
	{
		Scope:     "user",
		Operation: "reset",
		ShortDesc: "Request a password reset",
		LongDesc:  "Confirms the email is registered and reports that a reset email was sent. No data changes.",
		Syntax:    "user reset <email>",
		Arguments: []string{"email: The account email"},
		Examples:  []string{"user reset ana@example.com"},
	},
	{
		Scope:     "user",
		Operation: "update",
		ShortDesc: "Update the logged-in account",
		LongDesc:  "Updates name, email and phone, optionally changing the password. Requires the current password.",
		Syntax:    "user update <name> <email> <phone> <current-password> [new-password]",
		Arguments: []string{"name: New full name", "email: New email address", "phone: New phone, digits only", "current-password: The current password, required", "new-password: (Optional) A replacement password"},
		Examples:  []string{"user update \"Ana Souza\" ana@example.com 11999990000 Secret1", "user update \"Ana Souza\" ana.souza@example.com 11999990000 Secret1 Newpass2"},
	},
	{
		Scope:     "user",
		Operation: "whoami",
		ShortDesc: "Show the current user",
		LongDesc:  "Displays the logged-in user's profile, or the guest state.",
		Syntax:    "user whoami",
		Examples:  []string{"user whoami"},
	},
	{
		Scope:     "task",
		Operation: "add",
		ShortDesc: "Add a task",
		LongDesc:  "Adds a task to the current owner scope with a sequential ID.",
		Syntax:    "task add <name> <due-date>",
		Arguments: []string{"name: Task description, quoted if it contains spaces", "due-date: Due date in YYYY-MM-DD format"},
		Examples:  []string{"task add \"buy groceries\" 2025-07-01"},
	},
	{
		Scope:     "task",
		Operation: "list",
		ShortDesc: "List tasks",
		LongDesc:  "Lists the current owner scope's tasks in the order they were added.",
		Syntax:    "task list",
		Examples:  []string{"task list"},
	},
	{
		Scope:     "task",
		Operation: "update",
		ShortDesc: "Update a task",
		LongDesc:  "Replaces a task's name and due date. The ID does not change.",
		Syntax:    "task update <id> <name> <due-date>",
		Arguments: []string{"id: The task ID", "name: New description", "due-date: New due date in YYYY-MM-DD format"},
		Examples:  []string{"task update 1 \"buy groceries and fruit\" 2025-07-02"},
	},
	{
		Scope:     "task",
		Operation: "delete",
		ShortDesc: "Delete a task",
		LongDesc:  "Removes a task by ID. Deleting an unknown ID is not an error.",
		Syntax:    "task delete <id>",
		Arguments: []string{"id: The task ID"},
		Examples:  []string{"task delete 1"},
	},
	{
		Scope:     "task",
		Operation: "toggle",
		ShortDesc: "Toggle a task's done state",
		LongDesc:  "Marks a task done, or pending again if it already was done.",
		Syntax:    "task toggle <id>",
		Arguments: []string{"id: The task ID"},
		Examples:  []string{"task toggle 1"},
	},
	{
		Scope:     "bmi",
		Operation: "calc",
		ShortDesc: "Calculate body mass index",
		LongDesc:  "Computes weight / height² and classifies the result. Decimal comma is accepted.",
		Syntax:    "bmi calc <height-m> <weight-kg>",
		Arguments: []string{"height-m: Height in meters, e.g. 1.75", "weight-kg: Weight in kilograms, e.g. 70 or 70,5"},
		Examples:  []string{"bmi calc 1.75 70", "bmi calc 1,75 70,5"},
	},
}
