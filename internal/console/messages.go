package console

// Messages — все строки, которые видит игрок.
type Messages struct {
	Intro []string

	LengthPrompt     string
	NotANumber       string
	LengthOutOfRange string

	GuessPrompt    string
	BadGuess       string
	RepeatedDigits string

	Bulls    string // fmt, одно %d
	Cows     string
	Won      string
	Attempts string

	ReplayPrompt string
}

func DefaultMessages() Messages {
	return Messages{
		Intro: []string{
			"This is the Bulls and Cows game.",
			"The computer picks a number and the player has to guess it.",
			"All digits of the hidden number are distinct, and it never starts with zero.",
			"Guesses must not repeat digits either, that would make the game too easy. A guess may start with zero.",
			"Bulls: the number of correct digits in the correct places.",
			"Cows: the number of digits present somewhere in the hidden number, but in the wrong place.",
			"",
		},

		LengthPrompt:     "Enter the length of the guessed number:",
		NotANumber:       "A number is required",
		LengthOutOfRange: "The length must be greater than zero and at most nine",

		GuessPrompt:    "Your guess:",
		BadGuess:       "    Enter a valid number",
		RepeatedDigits: "    The number must not contain repeated digits",

		Bulls:    "Bulls: %d",
		Cows:     "Cows: %d",
		Won:      "All bulls are in place!",
		Attempts: "Attempts: %d",

		ReplayPrompt: "Enter 'y' to play again. ",
	}
}
