package prompt

import "fmt"

// Case is one fixed evaluation input with the recipe name a good answer should produce
type Case struct {
	Ingredients        string
	ExpectedRecipeName string
}

// EvaluationCases returns a fresh copy of the evaluation fixtures
func EvaluationCases() []Case {
	return []Case{
		{Ingredients: "Tomato, Onion, Salt, Olive Oil", ExpectedRecipeName: "Simple Tomato-Onion Salad"},
		{Ingredients: "Rice, Garlic, Salt, Oil", ExpectedRecipeName: "Garlic Rice"},
		{Ingredients: "Potato, Salt, Oil", ExpectedRecipeName: "Crispy Salted Fries"},
		{Ingredients: "Chicken, Garlic, Onion, Pepper", ExpectedRecipeName: "Garlic Chicken Stir-Fry"},
		{Ingredients: "Milk, Sugar, Mango", ExpectedRecipeName: "Mango Milkshake"},
	}
}

const judgeTemplate = `
You are a food expert. Evaluate the AI-generated recipe based on the ingredients: %s.
Compare it with the expected recipe name: "%s".
Judge whether the recipe follows the instructions, includes only the given ingredients, and matches the expected dish type.
Answer YES if it is correct, otherwise NO. Also provide a short explanation.

AI-generated recipe:
"""
%s
"""
`

// Judge builds the prompt asking the model to grade candidate against c
func Judge(c Case, candidate string) string {
	return fmt.Sprintf(judgeTemplate, c.Ingredients, c.ExpectedRecipeName, candidate)
}
