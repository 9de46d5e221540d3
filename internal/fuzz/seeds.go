package fuzztests

import "testing"

const (
	maxSeedBytes = 64 << 10
	maxFuzzInput = 256 << 10
)

var javaSeeds = []string{
	"",
	`LOGGER.info("Remote job complete");`,
	"class A { void f() { LOGGER.error(\"disk full\"); } }",
	"class A { void f() { LOG.warn(\"a\" + b, e); logger.debug(\"x %s\", y); } }",
	"class A { void f() { LOGGER.info(\"outer\" + LOGGER.debug(\"inner\")); } }",
	"class A { void f() { LOGGER.info(x); } }",
	"class A { void f() { LOGGER.info(\"unterminated); } }",
	"class A { String s = \"é🙂\"; void f() { LOG.info(\"ünï & ?=#\"); } }",
	"LOGGER.error(",
	")))))",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range javaSeeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		return src[:maxSeedBytes]
	}
	return src
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
