package analyze

// TopicSelectionSystemPrompt sets the analyst role for topic selection.
const TopicSelectionSystemPrompt = "You are an expert news analyst specializing in identifying topics that would benefit from academic expert commentary."

// TopicSelectionPromptTemplate is the template for the topic selection
// prompt. The verb takes the story list as indented JSON.
const TopicSelectionPromptTemplate = `Based on the news stories JSON provided, select the top 3 news topics that would most benefit from academic expert commentary for media outlets.

If news stories are available, your task is to:

1. Evaluate each news story using these criteria:
   - Complexity (requires expert knowledge to fully understand)
   - Public interest (generates significant questions or concerns)
   - Timeliness (relevant to current discourse)
   - Impact (affects many people or has significant consequences)
   - Controversy (involves multiple perspectives or interpretations)

2. Select exactly 3 news topics that best meet these criteria

3. Format your response as a valid JSON with the following structure:
{
  "selected_topics": [
    {
      "topic_id": 1,
      "headline": "Topic headline",
      "summary": "2-3 sentence summary",
      "need_for_commentary": "Why this topic needs expert input",
      "expert_angles": ["Specific question 1", "Specific question 2"]
    }
  ]
}

4. Prioritize topics that are:
   - Complex enough to require expert interpretation
   - Current and timely (happening within the past 24 hours)
   - Likely to remain relevant for at least the next few days
   - Of interest to multiple media outlets

5. Avoid selecting topics that:
   - Are primarily opinion-based with little factual substance
   - Are too specialized for general media interest
   - Have already been extensively covered by experts
   - Are politically divisive without substantive policy elements

6. Add a topic_id field to each topic (1, 2, 3)

News Stories:
%s

YOU MUST RETURN YOUR RESPONSE IN VALID JSON FORMAT ONLY.`
