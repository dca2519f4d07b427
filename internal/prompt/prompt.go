// Package prompt holds the fixed prompt templates sent to the upstream model.
//
// Each Strategy differs only in wording; the ingredient list is substituted
// verbatim with no escaping or length limit.
package prompt

import (
	"fmt"
	"strings"
)

// Strategy selects which template a generation request uses
type Strategy string

const (
	Plain          Strategy = "plain"
	ZeroShot       Strategy = "zero-shot"
	OneShot        Strategy = "one-shot"
	MultiShot      Strategy = "multi-shot"
	Dynamic        Strategy = "dynamic"
	ChainOfThought Strategy = "chain-of-thought"
)

// Strategies lists every strategy in route registration order
var Strategies = []Strategy{Plain, ZeroShot, OneShot, MultiShot, Dynamic, ChainOfThought}

// Valid reports whether s names a known strategy
func (s Strategy) Valid() bool {
	_, ok := templates[s]
	return ok
}

// Build substitutes ingredients into the template for s
func Build(s Strategy, ingredients string) (string, error) {
	if !s.Valid() {
		return "", fmt.Errorf("unknown prompt strategy %q", s)
	}
	return strings.ReplaceAll(templates[s], ingredientsPlaceholder, ingredients), nil
}

const ingredientsPlaceholder = "{{ingredients}}"

const recipeFormat = `1. Recipe Name
2. Ingredients (list with measurements)
3. Step-by-step Instructions
4. Prep Time
5. Cook Time
6. Servings
7. Optional Tips / Variations`

const oneShotExample = `
Example:
Ingredients: Tomato, Onion, Salt, Pepper
Recipe:
1. Recipe Name: Simple Tomato-Onion Salad
2. Ingredients:
   - 1 Tomato, chopped
   - 1 Onion, sliced
   - 1/2 tsp Salt
   - 1/4 tsp Pepper
3. Step-by-step Instructions:
   - Mix tomato and onion in a bowl.
   - Sprinkle salt and pepper.
   - Toss well and serve fresh.
4. Prep Time: 5 mins
5. Cook Time: 0 mins
6. Servings: 2
7. Optional Tips: Add lemon juice for extra tang.
`

const multiShotExamples = `
Example 1:
Ingredients: Potato, Salt, Oil
Recipe:
1. Recipe Name: Crispy Salted Fries
2. Ingredients:
   - 2 Potatoes, sliced
   - 1/2 tsp Salt
   - 2 tbsp Oil
3. Step-by-step Instructions:
   - Heat oil in a pan.
   - Fry sliced potatoes until golden.
   - Sprinkle salt and serve hot.
4. Prep Time: 10 mins
5. Cook Time: 15 mins
6. Servings: 2
7. Optional Tips: Add chili powder for spicy fries.

Example 2:
Ingredients: Rice, Tomato, Onion, Garlic, Salt
Recipe:
1. Recipe Name: Tomato Garlic Rice
2. Ingredients:
   - 1 cup Rice
   - 2 Tomatoes, chopped
   - 1 Onion, chopped
   - 2 Garlic cloves, minced
   - 1 tsp Salt
3. Step-by-step Instructions:
   - Cook rice and set aside.
   - Sauté onion and garlic in oil.
   - Add tomatoes and salt, cook until soft.
   - Mix in rice and stir well.
4. Prep Time: 10 mins
5. Cook Time: 20 mins
6. Servings: 3
7. Optional Tips: Garnish with coriander.
`

var templates = map[Strategy]string{
	Plain: `
System: You are an expert chef with deep knowledge of flavors, cuisines, and cooking techniques.

User Task: Suggest a recipe using ONLY the following ingredients: {{ingredients}}.

Format: Provide the recipe in this structure:
` + recipeFormat + `

Constraints:
- Do NOT add any ingredients not listed above.
- Keep instructions simple and easy to follow.
- Make it suitable for home cooking.
`,

	ZeroShot: `
You are a master chef.
Task: Create a complete recipe using ONLY these ingredients: {{ingredients}}.
Do NOT use any extra ingredients.

Output the recipe in this format:
` + recipeFormat + `
`,

	OneShot: `
You are a world-class chef.
Task: Given some ingredients, generate a recipe in the same style and structure as the example below.

` + oneShotExample + `

Now, using ONLY these ingredients: {{ingredients}}, create a recipe.
`,

	MultiShot: `
You are a world-class chef.
Task: Given some ingredients, generate a recipe in the same style and structure as the examples below.

` + multiShotExamples + `

Now, using ONLY these ingredients: {{ingredients}}, create a recipe.
`,

	Dynamic: `
You are a master chef.
Task: Create a recipe using ONLY these ingredients: {{ingredients}}.
If the ingredients include any dietary preferences (e.g., vegetarian, vegan, gluten-free), ensure the recipe adheres to those preferences. If no such preferences are indicated, create a general recipe.

Format:
` + recipeFormat + `

Constraints:
- Do NOT use any ingredients not listed above.
- Follow the user preference if specified.
`,

	ChainOfThought: `
You are a master chef.
Task: Suggest a recipe using ONLY these ingredients: {{ingredients}}.
Before giving the final recipe, explain your thought process step by step:
1. How to combine flavors.
2. Cooking techniques to use.
3. Any optional variations.
Then provide the final recipe in this format:
` + recipeFormat + `
`,
}
