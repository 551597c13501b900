package argon2_test

import (
	"fmt"

	"github.com/jeremyhahn/go-argon2/pkg/argon2"
	"github.com/jeremyhahn/go-argon2/pkg/argon2/software"
)

func ExampleArgon2_Hash() {
	hasher := argon2.NewArgon2(nil, software.New(), nil)

	ctx := argon2.DefaultContext()
	result, err := hasher.Hash([]byte("test"), []byte("test1234"), &ctx, argon2.EncodedOutput)
	if err != nil {
		panic(err)
	}
	fmt.Println(result.Status)
	fmt.Println(result.Encoded)
	// Output:
	// OK
	// $argon2i$v=19$m=4096,t=3,p=1$dGVzdDEyMzQ$mz9PE6IpsqOkYnbENJtM7XWf01XTOBmf5MBkg1IN/Pw
}

func ExampleArgon2_Verify() {
	hasher := argon2.NewArgon2(nil, software.New(), nil)

	encoded := "$argon2i$v=19$m=4096,t=3,p=1$dGVzdDEyMzQ$mz9PE6IpsqOkYnbENJtM7XWf01XTOBmf5MBkg1IN/Pw"

	match, _ := hasher.Verify([]byte("test"), encoded, argon2.Argon2i)
	mismatch, _ := hasher.Verify([]byte("wrong"), encoded, argon2.Argon2i)
	fmt.Println(match.Success, mismatch.Success, mismatch.Error == "")
	// Output: true false true
}
