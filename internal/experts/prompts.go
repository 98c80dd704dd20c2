package experts

// ExpertFinderSystemPrompt sets the researcher role for expert discovery.
const ExpertFinderSystemPrompt = "You are an expert researcher specializing in identifying academic experts for news commentary."

// ExpertFinderPromptTemplate is the template for the expert discovery
// prompt. The verb takes the topic analysis as indented JSON.
const ExpertFinderPromptTemplate = `For each of the news topics identified in the JSON, identify 3 specific academic experts who would be ideal candidates to provide valuable commentary. Format your response as valid JSON.

For each topic in the input JSON's selected_topics array, find exactly 3 experts who meet these criteria:
- Have demonstrated expertise directly relevant to the specific news topic
- Hold academic credentials or research positions at universities or research institutions
- Have published work, given interviews, or made public statements on similar issues
- Represent diverse perspectives and institutions

Return your response in this JSON structure:
{
  "expert_recommendations": [
    {
      "topic_id": 1,
      "topic": "EXACT headline from the input topic",
      "experts": [
        {
          "name": "Full name and title",
          "institution": "Current academic institution",
          "expertise": "Specific area and relevance to the topic",
          "notable_work": "Brief mention of relevant work or appearances",
          "unique_perspective": "What specific angle they bring to the topic",
          "contact_method": "Preferred contact method (e.g., 'via university department')",
          "suggested_questions": ["Question 1", "Question 2"],
          "contact_info": "Expert's email in format firstname.lastname@institution.edu"
        }
      ]
    }
  ]
}

CRITICAL INSTRUCTIONS:
1. Use EXACT headlines from the input topics
2. For each expert, draw questions from the topic's expert_angles when available
3. Ensure expert perspectives are diverse and relevant
4. For contact_info, generate a realistic academic email address based on the expert's name and institution
5. Add topic_id field to each topic
6. Focus on real experts with verifiable credentials and relevant expertise
7. Ensure the final output is valid, parseable JSON

Input JSON:
%s

YOU MUST RETURN YOUR RESPONSE IN VALID JSON FORMAT ONLY.`
