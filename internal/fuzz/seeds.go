package fuzztests

import "testing"

const maxFuzzInput = 16 << 10 // 16 KiB, больше полярам не нужно

var genericSeeds = []string{
	"TWA\\TWS;4;8;12\n30;3.1;5.2;6.0\n60;3.8;6.1;7.2\n",
	"twa/tws,6,10\n45,4,6\n45,4.5,6.5\n",
	"TWA\\TWS\t6\n\n52\t5.1\n",
	"TWA\\TWS;0x1p3;1e1\n3e1;1;2\n",
	"TWA/TWS",
	"TWA\\TWS;;\n;;\n",
}

var nativeSeeds = []string{
	"!pqPolarGenerator Exd format -- tws curves\n6\t30\t3.1\t60\t3.8\n",
	"!c\n8,45,6.1,45,6.4\n",
	"6.5;45;4.1\n",
	"6\n",
	"6 45 4 45\n",
	"x\n\n   \n!\n",
}

func addSeeds(f *testing.F, seeds []string) {
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clip(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
