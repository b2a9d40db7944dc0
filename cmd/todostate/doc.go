// The todostate program drives the todostate package from the command line: it loads a todo list from a YAML
// file into a fresh state and prints views derived from it, or the name of a user according to the user
// directory.
//
// The todo file is a list of entries with a text and an optional completed flag:
//
//	- text: buy milk
//	  completed: true
//	- text: call mom
//
// Settings are read from lib/todostate/config.yaml within the user's home directory, or the file given with
// -config. All settings are optional:
//
//	log_level: debug
//	user_id: "3"
//	directory:
//	  endpoint: https://jsonplaceholder.typicode.com/users/
//	  timeout: 5s
//	  rate_limit: 2   # requests per second, 0 means unlimited
//	  burst: 1
//	  wire_log: /tmp/todostate.wire
//
// Examples: "todostate -todos todo.yaml list -filter completed" lists completed items; "todostate stats"
// prints statistics; "todostate whoami -user 2" fetches the name of user 2.
package main // import "github.com/nicolagi/todostate/cmd/todostate"
