// File: example_test.go
// Title: Example Tests for StrZ Package Documentation
// Description: Executable examples that serve as both documentation and
//              tests. These examples demonstrate typical usage patterns and
//              appear in the generated documentation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial example implementation

package strz_test

import (
	"fmt"
	"io"
	"strings"

	stxstrz "github.com/msto63/safetext/utils/strz"
)

func ExampleCopy() {
	var buf [6]byte
	stxstrz.Copy(buf[:], "hello world")
	fmt.Println(string(buf[:stxstrz.Len(buf[:])]))
	// Output:
	// hello
}

func ExampleConcat() {
	var buf [16]byte
	stxstrz.Copy(buf[:], "id-")
	stxstrz.Concat(buf[:], "primary")
	stxstrz.AppendUint(buf[:], 7)
	fmt.Println(string(buf[:stxstrz.Len(buf[:])]))
	// Output:
	// id-primary7
}

func ExampleTrim() {
	var buf [32]byte
	stxstrz.Copy(buf[:], "  config value \t")
	stxstrz.Trim(buf[:], stxstrz.TrimBoth)
	fmt.Println(string(buf[:stxstrz.Len(buf[:])]))
	// Output:
	// config value
}

func ExampleSubstring() {
	var buf [16]byte
	stxstrz.Substring(buf[:], "hello world", 6, 5)
	fmt.Println(string(buf[:stxstrz.Len(buf[:])]))
	// Output:
	// world
}

func ExampleCompareFold() {
	fmt.Println(stxstrz.CompareFold("Foo", "foo"))
	fmt.Println(stxstrz.CompareFold("Foo", "Fop") < 0)
	// Output:
	// 0
	// true
}

func ExampleIndexFold() {
	fmt.Println(stxstrz.IndexFold("Content-Type: text/plain", "content-type"))
	fmt.Println(stxstrz.IndexFold("Content-Type: text/plain", "charset"))
	// Output:
	// 0
	// -1
}

func ExampleLastIndex() {
	fmt.Println(stxstrz.LastIndex("a-b-c", "-"))
	// Output:
	// 3
}

func ExampleLastN() {
	fmt.Println(stxstrz.LastN("service.example.com", 3))
	fmt.Println(stxstrz.LastN("com", 10))
	// Output:
	// com
	// com
}

func ExampleTokenizer() {
	line := make([]byte, 32)
	stxstrz.Copy(line, "alpha,beta,,gamma")

	var tok stxstrz.Tokenizer
	tok.Reset(line)
	for {
		token, ok := tok.Next(",")
		if !ok {
			break
		}
		fmt.Println(string(token))
	}
	// Output:
	// alpha
	// beta
	// gamma
}

func ExampleReadLine() {
	stream := strings.NewReader("first\r\nsecond\n")
	var line [32]byte

	for {
		err := stxstrz.ReadLine(line[:], stream)
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println("read failed:", err)
			return
		}
		fmt.Println(string(line[:stxstrz.Len(line[:])]))
	}
	// Output:
	// first
	// second
}
