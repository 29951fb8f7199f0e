package i18n

// englishMessages holds all English translations.
var englishMessages = map[string]string{
	// App
	"app.name":        "AgriMitra",
	"app.description": "Your AI-powered farming companion",

	// Crop recommendation bot
	"cropBot.title":               "Crop Recommendation Assistant",
	"cropBot.subtitle":            "Your AI-powered farming advisor",
	"cropBot.welcomeMessage":      "Hello! I'm your crop recommendation assistant. I can help you choose the best crops for your farm based on soil type, climate, season, and market conditions. What would you like to know?",
	"cropBot.inputPlaceholder":    "Ask me about crops, soil, weather, or farming techniques...",
	"cropBot.placeholderResponse": "Based on your query, I can provide some general guidance. For clay soil, consider crops like rice, wheat, sugarcane, or cotton. For sandy soil, try groundnuts, pulses, or vegetables. Always consider your local climate and current market demand when selecting crops.",
	"cropBot.recommendationError": "Sorry, I could not get the crop recommendation at this time. Please try again later.",
	"cropBot.suggestedQuestions":  "Try asking:",
	"cropBot.question1":           "What crops grow best in clay soil?",
	"cropBot.question2":           "Which vegetables are profitable this season?",
	"cropBot.question3":           "How do I improve my soil quality?",
	"cropBot.smartAction":         "Get smart crop recommendation based on my location and weather",
	"cropBot.disclaimer":          "AI recommendations should be verified with local agricultural experts",

	// Market analysis bot
	"marketBot.title":               "Market Analysis Assistant",
	"marketBot.subtitle":            "Your AI-powered market advisor",
	"marketBot.welcomeMessage":      "Hello! I'm your market analysis assistant. I can help you with crop pricing, market trends, demand forecasting, and finding the best buyers for your produce. What would you like to know about the market?",
	"marketBot.inputPlaceholder":    "Ask about prices, market trends, demand, or buyers...",
	"marketBot.placeholderResponse": "Current market prices are stable: Wheat ₹2,000-2,200/quintal, Rice ₹1,800-2,000/quintal, Cotton ₹5,500-6,000/quintal. Prices vary by region and quality. Check local mandis for exact rates and consider storage for better prices.",
	"marketBot.suggestedQuestions":  "Try asking:",
	"marketBot.question1":           "What are current tomato prices in my area?",
	"marketBot.question2":           "Which crops have the highest demand this month?",
	"marketBot.question3":           "When is the best time to sell my harvest?",
	"marketBot.disclaimer":          "Market data should be verified with local traders and marketplaces",

	// Disease detection bot
	"diseaseBot.title":               "Disease Detection Assistant",
	"diseaseBot.subtitle":            "Your AI-powered plant health advisor",
	"diseaseBot.welcomeMessage":      "Hello! I'm your disease detection assistant. I can help you identify plant diseases, suggest treatments, and provide prevention strategies. You can describe symptoms or upload photos for analysis. How can I help with your crop health?",
	"diseaseBot.inputPlaceholder":    "Describe symptoms or ask about plant diseases...",
	"diseaseBot.placeholderResponse": "Common plant diseases include fungal infections (leaf spots, wilting), bacterial spots, and viral diseases. For yellow spots on tomatoes, it could be early blight or nutrient deficiency. Maintain proper drainage, crop rotation, and timely treatment with appropriate fungicides.",
	"diseaseBot.suggestedQuestions":  "Try asking:",
	"diseaseBot.question1":           "My tomato leaves have yellow spots, what could it be?",
	"diseaseBot.question2":           "How can I prevent fungal diseases in my crops?",
	"diseaseBot.question3":           "What are the signs of pest infestation?",
	"diseaseBot.uploadAction":        "Upload a plant image for disease analysis",
	"diseaseBot.disclaimer":          "Disease diagnosis should be confirmed by agricultural experts",
}
